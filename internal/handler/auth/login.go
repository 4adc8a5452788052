// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"zhangwu-showcase/internal/dto"
	"zhangwu-showcase/internal/service"
	"zhangwu-showcase/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	loginSuccessMessage   = "登录成功"
	invalidCredentialsMsg = "账号或密码错误"
	internalErrorMsg      = "服务器内部错误"
)

// LoginHandler 校验账号密码并返回令牌
// @Summary     登录
// @Description 以 username 与 password 登录，成功时返回令牌与显示名称
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登录数据"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     422  {object} dto.ValidationError
// @Failure     500  {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(verifier service.CredentialVerifier, issuer service.TokenIssuer, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 只检查字段是否出现，空字符串交给账号比对
		if details := validator.BindJSON(c, &req); details != nil {
			return c.JSON(http.StatusUnprocessableEntity, dto.ValidationError{Detail: details})
		}

		user, err := verifier.Verify(c.Request().Context(), *req.Username, *req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Debug("login rejected", zap.String("username", *req.Username))
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: invalidCredentialsMsg})
		}
		if err != nil {
			logger.Error("verify credentials", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: internalErrorMsg})
		}

		token, err := issuer.Issue(*user)
		if err != nil {
			logger.Error("issue token", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: internalErrorMsg})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Code:    http.StatusOK,
			Message: loginSuccessMessage,
			Token:   token,
			User:    user.DisplayName,
		})
	}
}
