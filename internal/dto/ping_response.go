package dto

// PingResponse 健康检查响应模型
// swagger:model dto.PingResponse
type PingResponse struct {
	// 响应消息
	Message string `json:"message" example:"pong"`
}
