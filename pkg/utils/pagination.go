package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams is the normalized page/limit pair shared by every list
// endpoint, with the precomputed store offset.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads `page` and `limit` from the query string.
// Unparseable or out-of-range values fall back to page 1 and 20 per page;
// limit is capped at 100.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}
