package handler

import (
	"net/http/httptest"
	"testing"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
		wantOffset   int
	}{
		{"defaults", "/x", 1, 10, 0},
		{"explicit", "/x?page=3&pageSize=25", 3, 25, 50},
		{"zero page clamps to one", "/x?page=0", 1, 10, 0},
		{"negative values", "/x?page=-2&pageSize=-5", 1, 10, 0},
		{"page size capped", "/x?pageSize=5000", 1, 100, 0},
		{"garbage ignored", "/x?page=abc&pageSize=def", 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parsePageParams(httptest.NewRequest("GET", tt.url, nil))
			if p.page != tt.wantPage || p.pageSize != tt.wantPageSize || p.offset() != tt.wantOffset {
				t.Errorf("got page=%d size=%d offset=%d, want page=%d size=%d offset=%d",
					p.page, p.pageSize, p.offset(), tt.wantPage, tt.wantPageSize, tt.wantOffset)
			}
		})
	}
}

func TestPaginated_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"exact fit", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"empty", 0, 10, 0},
		{"single partial page", 3, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := paginated(nil, tt.total, pageParams{page: 1, pageSize: tt.size})
			if resp.TotalPages != tt.want {
				t.Errorf("TotalPages = %d, want %d", resp.TotalPages, tt.want)
			}
		})
	}
}
