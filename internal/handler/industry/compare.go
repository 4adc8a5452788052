package industry

import (
	"net/http"

	"zhangwu-showcase/internal/content"

	"github.com/labstack/echo/v4"
)

// CompareHandler 枸杞产地对比与硅砂资源
// @Summary     产业对比
// @Tags        industry
// @Produce     json
// @Success     200 {object} dto.IndustryCompareResponse
// @Router      /industry/compare [get]
func CompareHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, content.IndustryCompare())
	}
}
