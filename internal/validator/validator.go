// Package validator 把 go-playground/validator 接到 Echo，并把绑定与校验错误
// 转为 422 响应使用的 detail 列表
package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"zhangwu-showcase/internal/dto"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *playground.Validate
}

// New 创建以 json tag 作为字段名称的 validator
func New() *CustomValidator {
	v := playground.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// BindJSON 以 JSON 绑定并校验请求体，成功时返回 nil
// 未带 Content-Type 的请求按 JSON 处理；对象之后多余的内容、类型错误与缺少字段都会产生 detail
func BindJSON(c echo.Context, i interface{}) []dto.ValidationIssue {
	req := c.Request()
	if req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return jsonInvalid()
		}
		body = b
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
	}

	if err := c.Bind(i); err != nil {
		return BindDetails(err)
	}
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		return jsonInvalid()
	}
	if err := c.Validate(i); err != nil {
		return markNullFields(ValidationDetails(err), body)
	}
	return nil
}

func jsonInvalid() []dto.ValidationIssue {
	return []dto.ValidationIssue{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error",
		Type: "json_invalid",
	}}
}

// markNullFields 字段出现但值为 null 时属于类型错误，不是缺少字段
func markNullFields(details []dto.ValidationIssue, body []byte) []dto.ValidationIssue {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return details
	}
	for i, d := range details {
		if d.Type != "missing" || len(d.Loc) != 2 {
			continue
		}
		if v, ok := raw[d.Loc[1]]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			details[i].Msg = "Input should be a valid string"
			details[i].Type = "string_type"
		}
	}
	return details
}

// BindDetails 将 c.Bind 返回的错误转为 detail 列表
func BindDetails(err error) []dto.ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
		err = he.Internal
	}
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []dto.ValidationIssue{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "Input should be a valid " + typeErr.Type.String(),
			Type: typeErr.Type.Kind().String() + "_type",
		}}
	}
	return jsonInvalid()
}

// ValidationDetails 将 Validate 返回的错误转为 detail 列表
// 非 ValidationErrors 的错误视为整个 body 无效
func ValidationDetails(err error) []dto.ValidationIssue {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]dto.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issue := dto.ValidationIssue{Loc: []string{"body", fe.Field()}}
		if fe.Tag() == "required" {
			issue.Msg = "Field required"
			issue.Type = "missing"
		} else {
			issue.Msg = fe.Error()
			issue.Type = fe.Tag()
		}
		out = append(out, issue)
	}
	return out
}
