package store

import (
	"context"
	"errors"
	"fmt"

	"user-directory/internal/database"
	"user-directory/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrUserNotFound 表示指定 ID 沒有對應的使用者
var ErrUserNotFound = errors.New("user not found")

const userColumns = `id, name, email, password_hash, created_at`

// UserStore 封裝 users 資料表的 find-all / find-by-id / insert / update-by-id / delete-by-id
type UserStore struct {
	db database.DB
}

func NewUserStore(db database.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUserByID: %w", ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// CreateUser 寫入新使用者，ID 與 created_at 由資料庫產生後回填
func (s *UserStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser 只更新 name 與 email，password_hash 不變
func (s *UserStore) UpdateUser(ctx context.Context, userID uuid.UUID, name, email string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2
		 WHERE id = $3`,
		name,
		email,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUser: %w", ErrUserNotFound)
	}
	return nil
}

func (s *UserStore) UpdateUserWithPassword(ctx context.Context, userID uuid.UUID, name, email, passwordHash string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, password_hash = $3
		 WHERE id = $4`,
		name,
		email,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserWithPassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserWithPassword: %w", ErrUserNotFound)
	}
	return nil
}

// DeleteUser 刪除不存在的 ID 不視為錯誤
func (s *UserStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
