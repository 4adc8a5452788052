// File: internal/service/credential.go
package service

import (
	"context"
	"errors"
	"fmt"

	"zhangwu-showcase/internal/database"
	"zhangwu-showcase/internal/model"
	"zhangwu-showcase/internal/repository"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidCredentials 账号或密码不符
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier 校验账号密码
// 不符时返回 ErrInvalidCredentials，其他错误视为内部错误
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*model.User, error)
}

// StaticVerifier 与固定账号密码逐字节比对
type StaticVerifier struct {
	Username    string
	Password    string
	DisplayName string
}

func (v StaticVerifier) Verify(_ context.Context, username, password string) (*model.User, error) {
	if username != v.Username || password != v.Password {
		return nil, ErrInvalidCredentials
	}
	return &model.User{Name: v.Username, DisplayName: v.DisplayName}, nil
}

var getUserByName = repository.GetUserByName

// UserStoreVerifier 由 users 数据表查询账号，并以 bcrypt 比对密码
type UserStoreVerifier struct {
	DB database.DB
}

func (v UserStoreVerifier) Verify(ctx context.Context, username, password string) (*model.User, error) {
	user, err := getUserByName(ctx, v.DB, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Name
	}
	return user, nil
}
