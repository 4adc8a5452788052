// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"zhangwu-showcase/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer 为通过校验的用户签发令牌
type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

// StaticTokenIssuer 一律返回同一个固定字符串，不含任何可验证内容
type StaticTokenIssuer struct {
	Token string
}

func (s StaticTokenIssuer) Issue(model.User) (string, error) {
	return s.Token, nil
}

// CustomClaims 定义 JWT 负载内容
type CustomClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

var timeNow = time.Now

// JWTIssuer 以 HS256 签发带到期时间的 JWT
type JWTIssuer struct {
	Secret string
	TTL    time.Duration
}

func (j JWTIssuer) Issue(user model.User) (string, error) {
	if j.Secret == "" {
		return "", fmt.Errorf("JWT secret not set")
	}

	now := timeNow()
	claims := CustomClaims{
		Name: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.Secret))
}
