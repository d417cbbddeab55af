package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Window is a skip/limit pair. Limit 0 means unbounded.
type Window struct {
	Offset int64
	Limit  int64
}

func (w Window) Unbounded() bool {
	return w.Limit == 0
}

// ParseWindow converts 1-based page and size parameters. A missing page is
// page 1; a missing size returns everything, which only makes sense on the
// first page.
func ParseWindow(pageStr, sizeStr string, maxPageSize int) (Window, error) {
	page := int64(1)
	if s := strings.TrimSpace(pageStr); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 1 {
			return Window{}, fmt.Errorf("%w: %q", ErrInvalidPage, pageStr)
		}
		page = v
	}

	s := strings.TrimSpace(sizeStr)
	if s == "" {
		if page > 1 {
			return Window{}, ErrPageWithoutSize
		}
		return Window{}, nil
	}

	size, err := strconv.ParseInt(s, 10, 64)
	if err != nil || size < 1 || size > int64(maxPageSize) {
		return Window{}, fmt.Errorf("%w: %q (limit %d)", ErrInvalidSize, sizeStr, maxPageSize)
	}

	if page-1 > math.MaxInt64/size {
		return Window{}, ErrOffsetOverflow
	}

	return Window{Offset: (page - 1) * size, Limit: size}, nil
}
