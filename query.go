package backoffice

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DirectionAsc sorts ascending
	DirectionAsc = "asc"
	// DirectionDesc sorts descending
	DirectionDesc = "desc"
)

// DefaultPageSize is used when a query does not specify one
const DefaultPageSize = 10

// OrderBy is a (field, direction) sort pair
type OrderBy struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Param serializes the pair for the wire, e.g. "creationDate,desc"
func (o OrderBy) Param() string {
	direction := o.Direction
	if direction == "" {
		direction = DirectionAsc
	}
	return o.Field + "," + direction
}

// Query is the composed pagination, filter, and sort state driving one
// listing request. Pages are zero indexed on the wire.
type Query struct {
	Page    int            `json:"page"`
	Size    int            `json:"size"`
	Filters map[string]any `json:"filters,omitempty"`
	Sort    *OrderBy       `json:"sort,omitempty"`
}

// NewQuery returns a query on the first page with the default size
func NewQuery() Query {
	return Query{
		Page:    0,
		Size:    DefaultPageSize,
		Filters: map[string]any{},
	}
}

// QueryUpdate is a partial query. Nil fields leave the current value
// untouched; a filter entry with an empty value removes that key.
type QueryUpdate struct {
	Page      *int
	Size      *int
	Filters   map[string]any
	Sort      *OrderBy
	ClearSort bool
}

// PageOf is a convenience constructor for page-only updates
func PageOf(page int) QueryUpdate {
	return QueryUpdate{Page: &page}
}

// Merge applies the update over q and returns the result. The receiver is
// not mutated; filters are copied so callers never share the map.
func (q Query) Merge(update QueryUpdate) Query {
	merged := q
	merged.Filters = make(map[string]any, len(q.Filters)+len(update.Filters))
	for key, value := range q.Filters {
		merged.Filters[key] = value
	}

	if update.Page != nil {
		merged.Page = *update.Page
	}

	if update.Size != nil {
		merged.Size = *update.Size
	}

	for key, value := range update.Filters {
		if isEmptyFilterValue(value) {
			delete(merged.Filters, key)
			continue
		}
		merged.Filters[key] = value
	}

	if update.ClearSort {
		merged.Sort = nil
	} else if update.Sort != nil {
		sort := *update.Sort
		merged.Sort = &sort
	}

	return merged
}

// Values serializes the query for the listing endpoint: zero-indexed page,
// size, one parameter per filter with multi-valued filters comma joined,
// and sort as "field,direction".
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))

	for key, value := range q.Filters {
		values.Set(key, filterParam(value))
	}

	if q.Sort != nil {
		values.Set("sort", q.Sort.Param())
	}

	return values
}

func filterParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, filterParam(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isEmptyFilterValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

// Page is one page of results plus the metadata and the query that
// produced it.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int   `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Query         Query `json:"-"`
}

// TotalPagesFor computes ceil(totalElements / size) for positive sizes
func TotalPagesFor(totalElements, size int) int {
	if size <= 0 {
		return 0
	}
	return (totalElements + size - 1) / size
}
