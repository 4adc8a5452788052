package dto

// swagger:model dto.HomeStatsResponse
type HomeStatsResponse struct {
	ForestCoverage float64 `json:"forest_coverage" example:"34.5"`
	SandyLandFixed int     `json:"sandy_land_fixed" example:"200"`
	IndustryOutput float64 `json:"industry_output" example:"56.8"`
	TouristVisits  int     `json:"tourist_visits" example:"12000"`
}
