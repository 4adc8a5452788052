package dto

// swagger:model dto.RouteStop
type RouteStop struct {
	Title string `json:"title" example:"集结"`
	Desc  string `json:"desc" example:"治沙学校"`
}
