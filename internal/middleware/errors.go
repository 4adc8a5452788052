package middleware

import (
	"errors"
	"net/http"

	"zhangwu-showcase/internal/dto"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler 将框架层错误（404、405、panic 等）输出为 {"detail": ...}
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				detail = msg
			} else {
				detail = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError {
			logger.Error("unhandled error",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, dto.HTTPError{Detail: detail})
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
