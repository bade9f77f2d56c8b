package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginatedResponse defines the structure for any paginated API response
type PaginatedResponse struct {
	Data         any `json:"data"`
	StatusCode   int `json:"statusCode"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
}

type pageParams struct {
	page     int
	pageSize int
}

func (p pageParams) limit() int  { return p.pageSize }
func (p pageParams) offset() int { return (p.page - 1) * p.pageSize }

func parsePageParams(r *http.Request) pageParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	switch {
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	case pageSize <= 0:
		pageSize = defaultPageSize
	}

	return pageParams{page: page, pageSize: pageSize}
}

func paginated(data any, total int, p pageParams) PaginatedResponse {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.pageSize - 1) / p.pageSize
	}
	return PaginatedResponse{
		Data:         data,
		StatusCode:   http.StatusOK,
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  p.page,
		PageSize:     p.pageSize,
	}
}
