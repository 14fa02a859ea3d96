// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultLimit applies when a page number is given without a limit.
	DefaultLimit int64 = 20
	// MaxLimit caps caller-supplied limits.
	MaxLimit int64 = 200
)

// Page is a 1-based page request. The zero Page means "everything".
type Page struct {
	Limit  int64
	Number int64
}

// IsZero reports whether no paging was requested.
func (p Page) IsZero() bool {
	return p.Limit == 0 && p.Number == 0
}

// ParsePage reads limit and page query values. Both blank yields the zero
// Page. Malformed or non-positive values fall back to defaults, and the page
// number is capped so the skip it implies stays representable.
func ParsePage(limit, page string) Page {
	limit, page = strings.TrimSpace(limit), strings.TrimSpace(page)
	if limit == "" && page == "" {
		return Page{}
	}
	p := Page{Limit: DefaultLimit, Number: 1}
	if n, err := strconv.ParseInt(limit, 10, 64); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	if n, err := strconv.ParseInt(page, 10, 64); err == nil && n > 0 {
		p.Number = min(n, maxNumber(p.Limit))
	}
	return p
}

// Apply sets skip/limit on opts. The zero Page leaves opts unchanged.
func (p Page) Apply(opts *options.FindOptions) *options.FindOptions {
	if p.IsZero() {
		return opts
	}
	limit, number := p.Limit, p.Number
	if limit <= 0 {
		limit = DefaultLimit
	}
	if number <= 0 {
		number = 1
	}
	number = min(number, maxNumber(limit))
	return opts.SetLimit(limit).SetSkip((number - 1) * limit)
}

// maxNumber bounds page numbers so (number-1)*limit fits in an int64.
func maxNumber(limit int64) int64 {
	return math.MaxInt64 / limit
}
