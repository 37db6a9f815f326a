package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"user-directory/internal/cache"
	"user-directory/internal/model"
	"user-directory/internal/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrUserNotFound 指定 ID 沒有對應的使用者
var ErrUserNotFound = store.ErrUserNotFound

// ErrListCacheStale 寫入已成功，但列表快取的世代沒有推進
var ErrListCacheStale = errors.New("user list cache not invalidated")

// 列表快取以世代區分：每次寫入 INCR listGenKey，讀取只看目前世代的 key
const (
	listGenKey    = "users:list:gen"
	listKeyPrefix = "users:list:"
)

// UserStore 是 Directory 需要的持久層操作，*store.UserStore 直接滿足
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, name, email string) error
	UpdateUserWithPassword(ctx context.Context, userID uuid.UUID, name, email, passwordHash string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UpdateRequest 只有 KeepPassword 與 ChangePassword 兩種
type UpdateRequest interface {
	fields() UserFields
	changesPassword() bool
}

// KeepPassword 更新 name、email，保留原本的密碼雜湊
type KeepPassword struct {
	Name  string
	Email string
}

func (r KeepPassword) fields() UserFields   { return UserFields{Name: r.Name, Email: r.Email} }
func (KeepPassword) changesPassword() bool { return false }

// ChangePassword 更新 name、email 並以新密碼的雜湊取代舊雜湊
type ChangePassword struct {
	Name        string
	Email       string
	NewPassword string
}

func (r ChangePassword) fields() UserFields {
	return UserFields{Name: r.Name, Email: r.Email, Password: r.NewPassword}
}
func (ChangePassword) changesPassword() bool { return true }

// Listing 列表頁的資料：全部使用者、驗證錯誤與上次送出的欄位
type Listing struct {
	Users     []model.User
	Errors    []FieldError
	Submitted UserFields
}

// EditView 編輯頁的資料
type EditView struct {
	User   *model.User
	Errors []FieldError
}

// CreateResult 成功時 Created 非 nil；驗證失敗時 Invalid 帶回重繪資料
type CreateResult struct {
	Created *model.User
	Invalid *Listing
}

// UpdateResult 驗證失敗時 Invalid 帶回更新前的紀錄與錯誤
type UpdateResult struct {
	Invalid *EditView
}

type Option func(*Directory)

// WithCache 以 ttl 快取使用者列表；ttl <= 0 等同不快取
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(d *Directory) {
		d.cache = c
		d.cacheTTL = ttl
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(d *Directory) { d.log = l }
}

// Directory 使用者目錄服務：驗證後才進行任何寫入，雜湊與持久化交給外部
type Directory struct {
	users     UserStore
	hasher    Hasher
	validator *Validator
	cache     cache.Cache
	cacheTTL  time.Duration
	log       zerolog.Logger

	// stale 表示上次推進世代失敗，在成功推進前一律不讀寫快取
	stale atomic.Bool
}

func NewDirectory(users UserStore, hasher Hasher, opts ...Option) *Directory {
	d := &Directory{
		users:     users,
		hasher:    hasher,
		validator: NewValidator(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Directory) List(ctx context.Context) (*Listing, error) {
	users, err := d.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &Listing{Users: users, Errors: []FieldError{}}, nil
}

func (d *Directory) Create(ctx context.Context, f UserFields) (*CreateResult, error) {
	if errs := d.validator.Validate(f, true); len(errs) > 0 {
		users, err := d.listUsers(ctx)
		if err != nil {
			return nil, err
		}
		return &CreateResult{Invalid: &Listing{
			Users:     users,
			Errors:    errs,
			Submitted: UserFields{Name: f.Name, Email: f.Email},
		}}, nil
	}

	hash, err := d.hasher.Hash(ctx, f.Password)
	if err != nil {
		d.log.Error().Err(err).Str("op", "create").Msg("hash password")
		return nil, err
	}
	created, err := d.users.CreateUser(ctx, &model.User{
		Name:         f.Name,
		Email:        f.Email,
		PasswordHash: hash,
	})
	if err != nil {
		d.log.Error().Err(err).Str("op", "create").Msg("store failure")
		return nil, err
	}
	if err := d.invalidateList(ctx, "create"); err != nil {
		return nil, err
	}
	return &CreateResult{Created: created}, nil
}

func (d *Directory) FetchForEdit(ctx context.Context, id uuid.UUID) (*EditView, error) {
	u, err := d.getUser(ctx, "fetch_for_edit", id)
	if err != nil {
		return nil, err
	}
	return &EditView{User: u, Errors: []FieldError{}}, nil
}

func (d *Directory) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*UpdateResult, error) {
	current, err := d.getUser(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	f := req.fields()
	if errs := d.validator.Validate(f, req.changesPassword()); len(errs) > 0 {
		return &UpdateResult{Invalid: &EditView{User: current, Errors: errs}}, nil
	}

	switch r := req.(type) {
	case ChangePassword:
		hash, err := d.hasher.Hash(ctx, r.NewPassword)
		if err != nil {
			d.log.Error().Err(err).Str("op", "update").Msg("hash password")
			return nil, err
		}
		err = d.users.UpdateUserWithPassword(ctx, id, f.Name, f.Email, hash)
		if err != nil {
			return nil, d.storeError("update", id, err)
		}
	default:
		if err := d.users.UpdateUser(ctx, id, f.Name, f.Email); err != nil {
			return nil, d.storeError("update", id, err)
		}
	}
	if err := d.invalidateList(ctx, "update"); err != nil {
		return nil, err
	}
	return &UpdateResult{}, nil
}

// Delete 刪除已不存在的 ID 不回傳錯誤
func (d *Directory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.users.DeleteUser(ctx, id); err != nil {
		d.log.Error().Err(err).Str("op", "delete").Stringer("id", id).Msg("store failure")
		return err
	}
	return d.invalidateList(ctx, "delete")
}

func (d *Directory) getUser(ctx context.Context, op string, id uuid.UUID) (*model.User, error) {
	u, err := d.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, d.storeError(op, id, err)
	}
	return u, nil
}

// storeError 只把非 not-found 的錯誤記為系統故障
func (d *Directory) storeError(op string, id uuid.UUID, err error) error {
	if !errors.Is(err, ErrUserNotFound) {
		d.log.Error().Err(err).Str("op", op).Stringer("id", id).Msg("store failure")
	}
	return err
}

func (d *Directory) cacheEnabled() bool {
	return d.cache != nil && d.cacheTTL > 0
}

func (d *Directory) listUsers(ctx context.Context) ([]model.User, error) {
	key, cached := d.listKey(ctx)
	if cached {
		if users, ok := d.cachedList(ctx, key); ok {
			return users, nil
		}
	}

	users, err := d.users.ListUsers(ctx)
	if err != nil {
		d.log.Error().Err(err).Str("op", "list").Msg("store failure")
		return nil, err
	}

	if cached {
		if payload, err := json.Marshal(users); err != nil {
			d.log.Warn().Err(err).Msg("encode user list")
		} else if err := d.cache.Set(ctx, key, payload, d.cacheTTL).Err(); err != nil {
			d.log.Warn().Err(err).Msg("cache user list")
		}
	}
	return users, nil
}

// listKey 必須在讀 store 之前取得；較晚寫入的舊列表只會落在已過期的世代
func (d *Directory) listKey(ctx context.Context) (string, bool) {
	if !d.cacheEnabled() {
		return "", false
	}
	if d.stale.Load() {
		if err := d.cache.Incr(ctx, listGenKey).Err(); err != nil {
			d.log.Warn().Err(err).Msg("user list cache still stale")
			return "", false
		}
		d.stale.Store(false)
	}

	gen, err := d.cache.Get(ctx, listGenKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		gen = 0
	case err != nil:
		d.log.Warn().Err(err).Msg("read user list generation")
		return "", false
	}
	return listKeyPrefix + strconv.FormatInt(gen, 10), true
}

func (d *Directory) cachedList(ctx context.Context, key string) ([]model.User, bool) {
	payload, err := d.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			d.log.Warn().Err(err).Msg("read cached user list")
		}
		return nil, false
	}
	users := []model.User{}
	if err := json.Unmarshal(payload, &users); err != nil {
		d.log.Warn().Err(err).Msg("decode cached user list")
		return nil, false
	}
	return users, true
}

// invalidateList 推進列表世代；失敗時回傳 ErrListCacheStale 並停用快取直到推進成功
func (d *Directory) invalidateList(ctx context.Context, op string) error {
	if !d.cacheEnabled() {
		return nil
	}
	if err := d.cache.Incr(ctx, listGenKey).Err(); err != nil {
		d.stale.Store(true)
		d.log.Error().Err(err).Str("op", op).Msg("invalidate cached user list")
		return fmt.Errorf("%s: %w: %v", op, ErrListCacheStale, err)
	}
	d.stale.Store(false)
	return nil
}
