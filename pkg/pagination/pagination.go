package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
	Sort   string
	Order  string
}

// Page is the list payload returned by every List endpoint
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// OrderClause renders "column direction" for gorm's Order()
func (p Params) OrderClause() string {
	if p.Sort == "" {
		return "created_at " + OrderDesc
	}
	if p.Order != OrderAsc {
		return p.Sort + " " + OrderDesc
	}
	return p.Sort + " " + OrderAsc
}

// Parse extracts and validates page/limit/sort/order from query parameters.
// sort must be one of allowedSorts (column names), anything else falls back to defaultSort.
func Parse(c *gin.Context, allowedSorts []string, defaultSort string) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	return New(page, limit, c.Query("sort"), c.Query("order"), allowedSorts, defaultSort)
}

// New normalizes raw values the same way Parse does
func New(page, limit int, sort, order string, allowedSorts []string, defaultSort string) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortCol := defaultSort
	for _, s := range allowedSorts {
		if s == sort {
			sortCol = s
			break
		}
	}

	order = strings.ToLower(strings.TrimSpace(order))
	if order != OrderAsc {
		order = OrderDesc
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
		Sort:   sortCol,
		Order:  order,
	}
}
