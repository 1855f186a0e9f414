package pagination

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	columnRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	namer    = schema.NamingStrategy{}
)

// Params describes one page request. Filter keys are mapped from JSON field
// names to column names; anything that does not map to a plain identifier is
// dropped before it reaches the query.
type Params struct {
	Page         int
	Limit        int
	Filter       map[string]any
	Search       string
	SearchColumn string
	OrderColumn  string
	Sort         string
}

type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Limit      int   `json:"limit"`
}

// ParseFilter decodes a JSON predicate from a query parameter. Anything that
// fails to parse is treated as an empty filter, not an error.
func ParseFilter(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var filter map[string]any
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return map[string]any{}
	}
	return filter
}

func (p *Params) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	if p.SearchColumn == "" || !columnRe.MatchString(p.SearchColumn) {
		p.SearchColumn = "name"
	}
	if p.OrderColumn == "" || !columnRe.MatchString(p.OrderColumn) {
		p.OrderColumn = "name"
	}
	if strings.EqualFold(p.Sort, "ASC") {
		p.Sort = "ASC"
	} else {
		p.Sort = "DESC"
	}
}

func (p *Params) predicate(ctx context.Context, db *gorm.DB, model any) *gorm.DB {
	q := db.WithContext(ctx).Model(model)
	for key, value := range p.Filter {
		// filter keys arrive as JSON field names; map them to column
		// names before the whitelist so categoryId hits category_id
		col := namer.ColumnName("", key)
		if !columnRe.MatchString(col) {
			continue
		}
		q = q.Where(map[string]any{col: value})
	}
	if p.Search != "" {
		q = q.Where(
			fmt.Sprintf("LOWER(%s) LIKE ?", p.SearchColumn),
			"%"+strings.ToLower(p.Search)+"%",
		)
	}
	return q
}

// Paginate runs the count and the window against the same predicate and
// returns one page of rows plus page metadata.
func Paginate[T any](ctx context.Context, db *gorm.DB, p Params) (*Page[T], error) {
	p.normalize()
	offset := (p.Page - 1) * p.Limit

	var total int64
	if err := p.predicate(ctx, db, new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	rows := make([]T, 0, p.Limit)
	if err := p.predicate(ctx, db, new(T)).
		Order(p.OrderColumn + " " + p.Sort).
		Offset(offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return &Page[T]{
		Data:       rows,
		Total:      total,
		Page:       p.Page,
		TotalPages: totalPages,
		Limit:      p.Limit,
	}, nil
}
