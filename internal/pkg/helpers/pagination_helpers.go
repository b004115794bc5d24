package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// ParsePaginationParams extracts page and limit query parameters.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

// CalculateOffsetLimit converts a 1-based page number into a SQL offset.
func CalculateOffsetLimit(page, limit int) (offset int, boundedLimit int) {
	if limit <= 0 || limit > MaxPageSize {
		boundedLimit = DefaultPageSize
	} else {
		boundedLimit = limit
	}
	if page < 1 {
		page = DefaultPage
	}
	return (page - 1) * boundedLimit, boundedLimit
}

// TotalPages computes the total page count for a result set.
func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(limit)))
}
