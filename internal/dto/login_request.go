// File: internal/dto/login_request.go
package dto

// LoginRequest 登录请求
// 字段为指针以区分「缺少字段」与「空字符串」，required 只检查是否出现
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username *string `json:"username" validate:"required" example:"admin"`
	Password *string `json:"password" validate:"required" example:"123456"`
}
