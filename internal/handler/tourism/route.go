package tourism

import (
	"net/http"

	"zhangwu-showcase/internal/content"

	"github.com/labstack/echo/v4"
)

// RouteHandler 研学路线
// @Summary     旅游路线
// @Description 依次返回五个站点
// @Tags        tourism
// @Produce     json
// @Success     200 {array} dto.RouteStop
// @Router      /tourism/route [get]
func RouteHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, content.TourismRoute())
	}
}
