package dto

// ValidationError 请求校验失败 (422) 的响应模型
// swagger:model dto.ValidationError
type ValidationError struct {
	Detail []ValidationIssue `json:"detail"`
}

// ValidationIssue 单一字段的校验问题
// Loc 形如 ["body", "username"]
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg" example:"Field required"`
	Type string   `json:"type" example:"missing"`
}
