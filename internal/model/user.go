// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User 使用者紀錄；PasswordHash 僅存 bcrypt 雜湊，不會序列化輸出
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
