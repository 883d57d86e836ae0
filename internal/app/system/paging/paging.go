// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged public lists.
const PageSize = 12

// AdminPageSize is the page size used by the admin tables, which have
// more vertical space than the public card grids.
const AdminPageSize = 25

// LimitPlusOne returns PageSize+1 as int64 for look-ahead pagination
// (fetch one extra document to detect hasNext).
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// AdminLimitPlusOne returns AdminPageSize+1 as int64 for look-ahead
// pagination in admin tables.
func AdminLimitPlusOne() int64 { return int64(AdminPageSize + 1) }

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result holds pagination indicators computed by TrimPage.
type Result struct {
	HasPrev bool
	HasNext bool
}

// TrimPage trims a fetched slice for offset pagination. Call this after
// fetching pageSize+1 rows with an offset of start-1. It modifies the
// slice in place and returns pagination indicators.
func TrimPage[T any](rows *[]T, start int) Result {
	return trimPageWithSize(rows, start, PageSize)
}

// TrimPageAdmin is like TrimPage but uses AdminPageSize.
func TrimPageAdmin[T any](rows *[]T, start int) Result {
	return trimPageWithSize(rows, start, AdminPageSize)
}

func trimPageWithSize[T any](rows *[]T, start, pageSize int) Result {
	var res Result
	if len(*rows) > pageSize {
		*rows = (*rows)[:pageSize]
		res.HasNext = true
	}
	res.HasPrev = start > 1
	return res
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int // 1-based start index (0 if no results)
	End       int // 1-based end index (0 if no results)
	PrevStart int // start value for previous page link
	NextStart int // start value for next page link
}

// ComputeRange calculates display range values given the current start
// index and number of items shown.
func ComputeRange(start, shown int) Range {
	return computeRangeWithSize(start, shown, PageSize)
}

// ComputeRangeAdmin is like ComputeRange but uses AdminPageSize.
func ComputeRangeAdmin(start, shown int) Range {
	return computeRangeWithSize(start, shown, AdminPageSize)
}

func computeRangeWithSize(start, shown, pageSize int) Range {
	if shown == 0 {
		return Range{Start: 0, End: 0, PrevStart: 1, NextStart: 1}
	}

	prevStart := start - pageSize
	if prevStart < 1 {
		prevStart = 1
	}

	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prevStart,
		NextStart: start + pageSize,
	}
}

// Skip converts a 1-based start index into a Mongo skip value.
func Skip(start int) int64 {
	if start < 1 {
		return 0
	}
	return int64(start - 1)
}
