package models

import (
	"math"
	"strconv"
)

// PaginationParams ใช้เก็บค่าการแบ่งหน้า
type PaginationParams struct {
	Page  int `json:"page" query:"page" example:"1"`    // หมายเลขหน้าที่ต้องการ (เริ่มที่ 1)
	Limit int `json:"limit" query:"limit" example:"10"` // จำนวนรายการต่อหน้า
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// ParsePagination แปลง query string page/limit. Missing, non-numeric and
// non-positive values are rejected rather than clamped.
func ParsePagination(page, limit string) (PaginationParams, error) {
	p, err := strconv.Atoi(page)
	if err != nil {
		return PaginationParams{}, &ValidationError{Field: "page", Message: "must be a number"}
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		return PaginationParams{}, &ValidationError{Field: "limit", Message: "must be a number"}
	}
	params := PaginationParams{Page: p, Limit: l}
	if err := params.Validate(); err != nil {
		return PaginationParams{}, err
	}
	return params, nil
}

// Validate checks the 1-indexed page/limit contract.
func (p PaginationParams) Validate() error {
	if p.Page <= 0 {
		return &ValidationError{Field: "page", Message: "must be greater than 0"}
	}
	if p.Limit <= 0 {
		return &ValidationError{Field: "limit", Message: "must be greater than 0"}
	}
	// skip = limit*(page-1) ต้องไม่ล้น int64
	if int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return &ValidationError{Field: "page", Message: "is out of range"}
	}
	return nil
}

// NewPaginatedResponse สร้าง PaginatedResponse ใหม่
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p PaginationParams) GetSkip() int64 {
	return int64(p.Limit) * int64(p.Page-1)
}
