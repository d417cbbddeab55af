package query

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuery = errors.New("invalid room query")

	ErrInvalidPriceRange = fmt.Errorf("%w: price range must be \"min-max\" with 0 <= min <= max", ErrInvalidQuery)
	ErrInvalidPage       = fmt.Errorf("%w: page must be a positive integer", ErrInvalidQuery)
	ErrInvalidSize       = fmt.Errorf("%w: size must be a positive integer not above the page size limit", ErrInvalidQuery)
	ErrPageWithoutSize   = fmt.Errorf("%w: page beyond 1 requires size", ErrInvalidQuery)
	ErrOffsetOverflow    = fmt.Errorf("%w: page and size overflow the offset", ErrInvalidQuery)
)
