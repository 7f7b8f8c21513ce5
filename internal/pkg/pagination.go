package pkg

import (
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginationParams carries the page selection parsed from the query string.
// A nil or zero value means the first page with the default size.
type PaginationParams struct {
	Page  int
	Limit int
}

// Normalize clamps the params into a usable range.
func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
}

func (p *PaginationParams) offset() int {
	return (p.Page - 1) * p.Limit
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	pages := 1
	if limit > 0 {
		if pages = int((total + int64(limit) - 1) / int64(limit)); pages < 1 {
			pages = 1
		}
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Paginate counts the query, fetches one page of D rows and maps each row
// to its domain type through converter.
func Paginate[T any, D any](
	query *gorm.DB,
	pagination *PaginationParams,
	orderBy string,
	converter func(*D) (*T, error),
) ([]*T, int64, error) {
	if pagination == nil {
		pagination = &PaginationParams{}
	}
	pagination.Normalize()

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []D
	err := query.Order(orderBy).
		Offset(pagination.offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]*T, 0, len(rows))
	for i := range rows {
		item, err := converter(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}

	return out, total, nil
}
