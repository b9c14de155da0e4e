package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PerPage is the fixed page size of every paginated listing.
const PerPage = 15

// Page is the pagination envelope listings respond with.
type Page struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	LastPage    int         `json:"last_page"`
}

// PageNumber reads the ?page= query parameter, defaulting to 1.
func PageNumber(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageOffset is the row offset for the given page number.
func PageOffset(page int) int {
	return (page - 1) * PerPage
}

func NewPage(data interface{}, page int, total int64) Page {
	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return Page{
		Data:        data,
		CurrentPage: page,
		PerPage:     PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
