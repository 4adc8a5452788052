// File: internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"zhangwu-showcase/internal/database"
	"zhangwu-showcase/internal/model"
)

// GetUserByName 按账号查询用户，查无数据时返回的错误包住 pgx.ErrNoRows
func GetUserByName(ctx context.Context, db database.DB, userName string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, password_hash, display_name, created_at
		 FROM users WHERE name = $1`,
		userName,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.DisplayName,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByName: %w", err)
	}
	return u, nil
}
