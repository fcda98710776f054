package helper

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pagination ikut di envelope list sebagai "pagination".
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

// Paging hasil normalisasi ?page= & ?per_page= (page mulai dari 1).
type Paging struct {
	Page    int
	PerPage int
}

func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	p := Paging{Page: c.QueryInt("page", 1), PerPage: c.QueryInt("per_page", defaultPerPage)}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if maxPerPage > 0 && p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

func (p Paging) Offset() int { return (p.Page - 1) * p.PerPage }

// Scope dipakai di query list: db.Scopes(paging.Scope).
func (p Paging) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.PerPage)
}

// Result membangun metadata dari total baris dan jumlah item di halaman ini.
func (p Paging) Result(total int64, count int) Pagination {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
		Count:      count,
	}
}
