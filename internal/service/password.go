// File: internal/service/password.go
package service

import (
	"context"

	"user-directory/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost 固定的 bcrypt work factor
const PasswordCost = 10

// MaxPasswordBytes bcrypt 只取前 72 bytes，超過的部分在雜湊與比對時一律截掉
const MaxPasswordBytes = 72

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(truncatePassword(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), truncatePassword(password))
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// Hasher 單向雜湊密碼
type Hasher interface {
	Hash(ctx context.Context, password string) (string, error)
}

// PoolHasher 把 bcrypt 計算排進 worker pool，限制同時進行的雜湊數量
type PoolHasher struct {
	pool worker.Pool
}

func NewPoolHasher(pool worker.Pool) *PoolHasher {
	return &PoolHasher{pool: pool}
}

type hashResult struct {
	hash string
	err  error
}

func (h *PoolHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	done := make(chan hashResult, 1)
	if err := h.pool.Submit(ctx, func() {
		hash, err := HashPassword(password)
		done <- hashResult{hash: hash, err: err}
	}); err != nil {
		return "", err
	}

	select {
	case r := <-done:
		return r.hash, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
