// File: internal/model/user.go
package model

import "time"

// User 通过账号校验的用户
// 静态校验时只有 Name 与 DisplayName 有值
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
