package query

import (
	"net/url"
	"strings"
)

const (
	ParamCategory       = "category"
	ParamCategoryLegacy = "filter"
	ParamPriceRange     = "priceRange"
	ParamPage           = "page"
	ParamSize           = "size"
)

type RoomQuery struct {
	Filter Filter
	Window Window
}

// ParseRoomFilter builds the filter shared by the listing and the count.
// "category" wins over its older alias "filter"; an empty category adds no
// predicate.
func ParseRoomFilter(values url.Values) (Filter, error) {
	var f Filter

	category := strings.TrimSpace(values.Get(ParamCategory))
	if category == "" {
		category = strings.TrimSpace(values.Get(ParamCategoryLegacy))
	}
	if category != "" {
		f = f.And(CategoryEquals{Category: category})
	}

	if raw := values.Get(ParamPriceRange); raw != "" {
		price, err := ParsePriceRange(raw)
		if err != nil {
			return Filter{}, err
		}
		f = f.And(price)
	}

	return f, nil
}

func ParseRoomQuery(values url.Values, maxPageSize int) (RoomQuery, error) {
	f, err := ParseRoomFilter(values)
	if err != nil {
		return RoomQuery{}, err
	}

	w, err := ParseWindow(values.Get(ParamPage), values.Get(ParamSize), maxPageSize)
	if err != nil {
		return RoomQuery{}, err
	}

	return RoomQuery{Filter: f, Window: w}, nil
}

// SuiteShowcase selects available suites.
func SuiteShowcase(category, status string) Filter {
	return NewFilter(CategoryEquals{Category: category}, AvailabilityEquals{Status: status})
}
