package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-directory/internal/database"
	"user-directory/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==5 → GetUserByID / ListUsers
// 2) len(dest)==2 → CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 5:
		*dest[0].(*uuid.UUID) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*uuid.UUID) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeUserRows 依序回傳 users，可於指定位置注入 Scan 或迭代錯誤
type fakeUserRows struct {
	users   []model.User
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeUserRows) Close()                                       { r.closed = true }
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte                          { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeUserRows) Next() bool {
	if r.idx >= len(r.users) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeUserRows) Scan(dest ...any) error {
	row := &fakeUserRow{scanErr: r.scanErr, user: &r.users[r.idx-1]}
	return row.Scan(dest...)
}

func execTag(tag string, err error) func(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag(tag), err
	}
}

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    now,
	}

	/* --- ListUsers --- */
	t.Run("ListUsers success", func(t *testing.T) {
		second := *sample
		second.ID = uuid.New()
		second.Name = "Bob"
		rows := &fakeUserRows{users: []model.User{*sample, second}}
		s := NewUserStore(&database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "FROM users")
				return rows, nil
			},
		})
		users, err := s.ListUsers(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "Alice", users[0].Name)
		require.Equal(t, "Bob", users[1].Name)
		require.True(t, rows.closed)
	})

	t.Run("ListUsers empty", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeUserRows{}, nil },
		})
		users, err := s.ListUsers(context.Background())
		require.NoError(t, err)
		require.NotNil(t, users)
		require.Empty(t, users)
	})

	t.Run("ListUsers query error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("conn") },
		})
		_, err := s.ListUsers(context.Background())
		require.ErrorContains(t, err, "ListUsers: conn")
	})

	t.Run("ListUsers scan error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{users: []model.User{*sample}, scanErr: errors.New("scan")}, nil
			},
		})
		_, err := s.ListUsers(context.Background())
		require.Error(t, err)
	})

	t.Run("ListUsers rows error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{err: errors.New("iter")}, nil
			},
		})
		_, err := s.ListUsers(context.Background())
		require.ErrorContains(t, err, "iter")
	})

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, sample.ID, args[0])
				return &fakeUserRow{user: sample}
			},
		})
		u, err := s.GetUserByID(context.Background(), sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, "hash123", u.PasswordHash)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		})
		u, err := s.GetUserByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Nil(t, u)
	})

	t.Run("GetUserByID store failure", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("conn reset")}
			},
		})
		_, err := s.GetUserByID(context.Background(), uuid.New())
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUserNotFound)
	})

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		newID := uuid.New()
		newUser := &model.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "pwdhash"}
		s := NewUserStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"Bob", "bob@example.com", "pwdhash"}, args)
				return &fakeUserRow{user: &model.User{ID: newID, CreatedAt: now.Add(time.Hour)}}
			},
		})
		created, err := s.CreateUser(context.Background(), newUser)
		require.NoError(t, err)
		require.Equal(t, newID, created.ID)
		require.WithinDuration(t, now.Add(time.Hour), created.CreatedAt, time.Second)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("insert failed")}
			},
		})
		_, err := s.CreateUser(context.Background(), &model.User{})
		require.ErrorContains(t, err, "CreateUser")
	})

	/* --- UpdateUser --- */
	t.Run("UpdateUser success", func(t *testing.T) {
		var gotSQL string
		s := NewUserStore(&database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				gotSQL = sql
				require.Equal(t, []any{"Ana2", "ana2@x.com", sample.ID}, args)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		})
		require.NoError(t, s.UpdateUser(context.Background(), sample.ID, "Ana2", "ana2@x.com"))
		require.NotContains(t, gotSQL, "password_hash")
	})

	t.Run("UpdateUser not found", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("UPDATE 0", nil)})
		err := s.UpdateUser(context.Background(), sample.ID, "a", "b")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("UpdateUser error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("", errors.New("update failed"))})
		err := s.UpdateUser(context.Background(), sample.ID, "a", "b")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUserNotFound)
	})

	/* --- UpdateUserWithPassword --- */
	t.Run("UpdateUserWithPassword success", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "password_hash = $3")
				require.Equal(t, []any{"n", "e", "newHash", sample.ID}, args)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		})
		require.NoError(t, s.UpdateUserWithPassword(context.Background(), sample.ID, "n", "e", "newHash"))
	})

	t.Run("UpdateUserWithPassword not found", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("UPDATE 0", nil)})
		err := s.UpdateUserWithPassword(context.Background(), sample.ID, "n", "e", "h")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("UpdateUserWithPassword error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("", errors.New("pwd update failed"))})
		err := s.UpdateUserWithPassword(context.Background(), sample.ID, "n", "e", "h")
		require.Error(t, err)
	})

	/* --- DeleteUser --- */
	t.Run("DeleteUser success", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("DELETE 1", nil)})
		require.NoError(t, s.DeleteUser(context.Background(), sample.ID))
	})

	t.Run("DeleteUser absent id", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("DELETE 0", nil)})
		require.NoError(t, s.DeleteUser(context.Background(), uuid.New()))
	})

	t.Run("DeleteUser error", func(t *testing.T) {
		s := NewUserStore(&database.FakeDB{ExecFn: execTag("", errors.New("delete failed"))})
		require.ErrorContains(t, s.DeleteUser(context.Background(), sample.ID), "DeleteUser")
	})
}
