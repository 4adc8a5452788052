// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"登录成功"`
	Token   string `json:"token" example:"fake-jwt-token-zhangwu-2025"`
	User    string `json:"user" example:"管理员"`
}
