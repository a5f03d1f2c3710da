// Package filter applies price and bedroom filters, ordering and limits to
// normalized listings.
package filter

import (
	"slices"
	"strings"

	"zexplorer/internal/jsonval"
	"zexplorer/internal/logger"
)

// PricePath is the dotted path holding a listing's price.
const PricePath = "price.value"

// BedroomsKey is the top-level key holding a listing's bedroom count.
const BedroomsKey = "bedrooms"

// Options selects which listings survive and in what order. Nil bounds and
// a nil or non-positive Limit disable that step.
type Options struct {
	MinPrice    *int64
	MaxPrice    *int64
	MinBedrooms *int64
	Limit       *int
	SortBy      string
	Order       string
}

// Engine runs the filter stage.
type Engine struct {
	log *logger.Logger
}

// NewEngine creates a filter engine.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{log: log}
}

// Apply filters by price, then bedrooms, sorts and finally truncates to the
// limit. The input slice is left untouched.
func (e *Engine) Apply(listings []*jsonval.Object, opts Options) []*jsonval.Object {
	e.log.Info("Applying filters",
		"min_price", deref(opts.MinPrice),
		"max_price", deref(opts.MaxPrice),
		"min_bedrooms", deref(opts.MinBedrooms),
		"sort_by", opts.SortBy,
		"order", opts.Order,
		"limit", deref(opts.Limit),
	)

	filtered := e.filterPrice(listings, opts.MinPrice, opts.MaxPrice)
	filtered = e.filterBedrooms(filtered, opts.MinBedrooms)
	sorted := e.sort(filtered, opts.SortBy, opts.Order)

	if opts.Limit != nil && *opts.Limit > 0 && len(sorted) > *opts.Limit {
		sorted = sorted[:*opts.Limit]
	}

	return sorted
}

// filterPrice keeps listings with a price inside the inclusive bounds. A
// missing price always fails, bounds or not; a price that cannot be
// compared fails any bound that is set.
func (e *Engine) filterPrice(listings []*jsonval.Object, minPrice, maxPrice *int64) []*jsonval.Object {
	out := make([]*jsonval.Object, 0, len(listings))

	for _, l := range listings {
		price := jsonval.Lookup(l, PricePath)
		if price.IsNull() {
			continue
		}

		if minPrice != nil {
			c, err := jsonval.Compare(price, jsonval.Int(*minPrice))
			if err != nil || c < 0 {
				continue
			}
		}

		if maxPrice != nil {
			c, err := jsonval.Compare(price, jsonval.Int(*maxPrice))
			if err != nil || c > 0 {
				continue
			}
		}

		out = append(out, l)
	}

	return out
}

// filterBedrooms keeps listings with at least minBedrooms bedrooms.
func (e *Engine) filterBedrooms(listings []*jsonval.Object, minBedrooms *int64) []*jsonval.Object {
	if minBedrooms == nil {
		return listings
	}

	out := make([]*jsonval.Object, 0, len(listings))

	for _, l := range listings {
		beds, ok := jsonval.ToInt(l.At(BedroomsKey))
		if ok && beds >= *minBedrooms {
			out = append(out, l)
		}
	}

	return out
}

type sortEntry struct {
	rec *jsonval.Object
	key jsonval.Value
}

// sort orders listings by the value at sortBy. Nulls go last in either
// direction. When the keys mix incomparable kinds the order is left as is.
func (e *Engine) sort(listings []*jsonval.Object, sortBy, order string) []*jsonval.Object {
	if sortBy == "" || len(listings) < 2 {
		return listings
	}

	entries := make([]sortEntry, len(listings))
	for i, l := range listings {
		entries[i] = sortEntry{rec: l, key: jsonval.Lookup(l, sortBy)}
	}

	if !sortable(entries) {
		e.log.Warn("Failed to sort due to incomparable types", "sort_by", sortBy)
		return listings
	}

	desc := strings.EqualFold(order, "desc")

	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		aNull, bNull := a.key.IsNull(), b.key.IsNull()

		switch {
		case aNull && bNull:
			return 0
		case aNull:
			return 1
		case bNull:
			return -1
		}

		c, _ := jsonval.Compare(a.key, b.key)
		if desc {
			return -c
		}

		return c
	})

	out := make([]*jsonval.Object, len(entries))
	for i, en := range entries {
		out[i] = en.rec
	}

	return out
}

// sortable reports whether every non-null key can be ordered against the
// others. Comparability is per class (numbers with bools, strings), so
// checking against the first is enough.
func sortable(entries []sortEntry) bool {
	var first *jsonval.Value

	for i := range entries {
		key := entries[i].key
		if key.IsNull() {
			continue
		}

		if first == nil {
			first = &entries[i].key
			continue
		}

		if _, err := jsonval.Compare(*first, key); err != nil {
			return false
		}
	}

	return true
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}
