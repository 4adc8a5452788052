package validator

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zhangwu-showcase/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCustomValidator(t *testing.T) {
	cv := New()
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestValidateLoginRequest(t *testing.T) {
	cv := New()

	// 空字符串视为已提供
	require.NoError(t, cv.Validate(&dto.LoginRequest{Username: strPtr(""), Password: strPtr("")}))

	err := cv.Validate(&dto.LoginRequest{Password: strPtr("x")})
	require.Error(t, err)
	details := ValidationDetails(err)
	require.Equal(t, []dto.ValidationIssue{{Loc: []string{"body", "username"}, Msg: "Field required", Type: "missing"}}, details)

	details = ValidationDetails(cv.Validate(&dto.LoginRequest{}))
	require.Len(t, details, 2)
	require.Equal(t, []string{"body", "username"}, details[0].Loc)
	require.Equal(t, []string{"body", "password"}, details[1].Loc)
}

func TestValidationDetailsOtherError(t *testing.T) {
	details := ValidationDetails(errors.New("boom"))
	require.Len(t, details, 1)
	require.Equal(t, []string{"body"}, details[0].Loc)
	require.Equal(t, "boom", details[0].Msg)
}

func TestBindDetails(t *testing.T) {
	var req dto.LoginRequest
	err := json.Unmarshal([]byte(`{"username":123,"password":"x"}`), &req)
	require.Error(t, err)

	wrapped := echo.NewHTTPError(http.StatusBadRequest, "Unmarshal type error").SetInternal(err)
	details := BindDetails(wrapped)
	require.Len(t, details, 1)
	require.Equal(t, []string{"body", "username"}, details[0].Loc)
	require.Equal(t, "string_type", details[0].Type)

	details = BindDetails(echo.NewHTTPError(http.StatusBadRequest, "syntax"))
	require.Equal(t, "json_invalid", details[0].Type)
	require.Equal(t, []string{"body"}, details[0].Loc)
}

func bindContext(contentType, body string) echo.Context {
	e := echo.New()
	e.Validator = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindJSON(t *testing.T) {
	t.Run("ok without content type", func(t *testing.T) {
		c := bindContext("", `{"username":"admin","password":"123456"}`)
		var req dto.LoginRequest
		require.Nil(t, BindJSON(c, &req))
		require.Equal(t, "admin", *req.Username)
		require.Equal(t, "123456", *req.Password)
		require.Equal(t, echo.MIMEApplicationJSON, c.Request().Header.Get(echo.HeaderContentType))
	})

	t.Run("explicit content type kept", func(t *testing.T) {
		c := bindContext(echo.MIMEApplicationJSONCharsetUTF8, `{"username":"","password":""}`)
		var req dto.LoginRequest
		require.Nil(t, BindJSON(c, &req))
		require.Equal(t, "", *req.Username)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		var req dto.LoginRequest
		details := BindJSON(bindContext("", `{"username":"a","password":"b"}x`), &req)
		require.Equal(t, []dto.ValidationIssue{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}, details)

		details = BindJSON(bindContext("", `{"username":"a","password":"b"}{}`), &req)
		require.Equal(t, "json_invalid", details[0].Type)
	})

	t.Run("null is a type error", func(t *testing.T) {
		var req dto.LoginRequest
		details := BindJSON(bindContext("", `{"username":"a","password":null}`), &req)
		require.Equal(t, []dto.ValidationIssue{{
			Loc:  []string{"body", "password"},
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}}, details)
	})

	t.Run("missing and null together", func(t *testing.T) {
		var req dto.LoginRequest
		details := BindJSON(bindContext("", `{"username":null}`), &req)
		require.Len(t, details, 2)
		require.Equal(t, "string_type", details[0].Type)
		require.Equal(t, "missing", details[1].Type)
	})

	t.Run("empty body", func(t *testing.T) {
		var req dto.LoginRequest
		details := BindJSON(bindContext("", ""), &req)
		require.Len(t, details, 2)
		require.Equal(t, "missing", details[0].Type)
	})
}
