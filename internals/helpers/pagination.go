package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Presets =====
var (
	// ListOpts matches the 20-per-page default of the list views.
	ListOpts  = PageOptions{DefaultPerPage: 20, MaxPerPage: 100}
	AdminOpts = PageOptions{DefaultPerPage: 50, MaxPerPage: 200}
)

type PageParams struct {
	Page    int
	PerPage int
}

// ParsePage reads page/per_page (limit accepted as an alias) off the query
// string, clamped to the preset.
func ParsePage(c *fiber.Ctx, opt PageOptions) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	per := opt.DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	return PageParams{Page: page, PerPage: per}
}

func (p PageParams) Limit() int  { return p.PerPage }
func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

// BuildMeta is attached next to "data" on paginated list responses.
func (p PageParams) BuildMeta(total int64) fiber.Map {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

// SafeOrderClause picks an ORDER BY column from a whitelist so the sort key
// can never inject SQL.
func SafeOrderClause(allowed map[string]string, key, defaultKey, dir string) (string, error) {
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}
	d := "ASC"
	if strings.EqualFold(dir, "desc") {
		d = "DESC"
	}
	return col + " " + d, nil
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
