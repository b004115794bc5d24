package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(url string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/x", 1, 10},
		{"explicit", "/x?page=3&limit=25", 3, 25},
		{"zero page", "/x?page=0", 1, 10},
		{"negative page", "/x?page=-2", 1, 10},
		{"limit over max", "/x?limit=500", 1, 10},
		{"non-numeric", "/x?page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParsePaginationParams(testContext(tt.url))
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	if offset != 0 || limit != 10 {
		t.Errorf("page 1: got offset=%d limit=%d", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(4, 25)
	if offset != 75 || limit != 25 {
		t.Errorf("page 4: got offset=%d limit=%d", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(0, 0)
	if offset != 0 || limit != DefaultPageSize {
		t.Errorf("bad input: got offset=%d limit=%d", offset, limit)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
