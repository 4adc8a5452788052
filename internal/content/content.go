// Package content 提供展示页面使用的固定数据
// 每次调用都返回新建的值，调用方修改不会影响后续请求
package content

import "zhangwu-showcase/internal/dto"

// HomeStats 首页统计数据
func HomeStats() dto.HomeStatsResponse {
	return dto.HomeStatsResponse{
		ForestCoverage: 34.5,
		SandyLandFixed: 200,
		IndustryOutput: 56.8,
		TouristVisits:  12000,
	}
}

// IndustryCompare 枸杞产地对比与硅砂资源
func IndustryCompare() dto.IndustryCompareResponse {
	return dto.IndustryCompareResponse{
		Goji: []dto.GojiMetric{
			{Label: "土壤微量元素", Zhangwu: 92, Ningxia: 85},
			{Label: "平均日照时长", Zhangwu: 95, Ningxia: 88},
			{Label: "果实饱满度", Zhangwu: 90, Ningxia: 85},
		},
		Silica: dto.Silica{Reserves: 800000, Purity: 99.8},
	}
}

// TourismRoute 红色研学路线，依次排列
func TourismRoute() []dto.RouteStop {
	return []dto.RouteStop{
		{Title: "集结", Desc: "治沙学校"},
		{Title: "第一站", Desc: "董福财陈列馆"},
		{Title: "第二站", Desc: "万亩松林"},
		{Title: "体验", Desc: "有机农产采摘"},
		{Title: "终点", Desc: "硅砂产业园"},
	}
}
