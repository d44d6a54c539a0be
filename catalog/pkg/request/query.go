package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultLimit = 24
	MaxLimit     = 100
)

type Query struct {
	Search   string `validate:"max=200"                                             json:"search"`
	Category string `validate:"max=100"                                             json:"category"`
	Sort     string `validate:"omitempty,oneof=default name-asc name-desc popular" json:"sort"`
	Limit    int    `validate:"min=1,max=100"                                       json:"limit"`
	Offset   int    `validate:"min=0"                                               json:"offset"`
}

func (q Query) MarshalZerologObject(e *zerolog.Event) {
	e.Str("search", q.Search).
		Str("category", q.Category).
		Str("sort", q.Sort).
		Int("limit", q.Limit).
		Int("offset", q.Offset)
}

// QueryFromValues reads the products listing query string. Missing limit
// defaults to DefaultLimit; non-numeric limit or offset is an error.
func QueryFromValues(values url.Values) (Query, error) {
	q := Query{
		Search:   strings.TrimSpace(values.Get("search")),
		Category: strings.TrimSpace(values.Get("category")),
		Sort:     strings.TrimSpace(values.Get("sort")),
		Limit:    DefaultLimit,
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, fmt.Errorf("failed parsing limit=%s with error=%w", raw, err)
		}
		q.Limit = limit
	}
	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, fmt.Errorf("failed parsing offset=%s with error=%w", raw, err)
		}
		q.Offset = offset
	}

	return q, nil
}
