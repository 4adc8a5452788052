// File: internal/dto/http_error.go
package dto

// HTTPError 全局错误响应模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// detail 错误描述
	Detail string `json:"detail" example:"账号或密码错误"`
}
