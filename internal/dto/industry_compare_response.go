package dto

// swagger:model dto.IndustryCompareResponse
type IndustryCompareResponse struct {
	Goji   []GojiMetric `json:"goji"`
	Silica Silica       `json:"silica"`
}

// GojiMetric 章武与宁夏枸杞的单项评分对比
type GojiMetric struct {
	Label   string `json:"label" example:"土壤微量元素"`
	Zhangwu int    `json:"zhangwu" example:"92"`
	Ningxia int    `json:"ningxia" example:"85"`
}

// Silica 硅砂储量（吨）与纯度（%）
type Silica struct {
	Reserves int     `json:"reserves" example:"800000"`
	Purity   float64 `json:"purity" example:"99.8"`
}
