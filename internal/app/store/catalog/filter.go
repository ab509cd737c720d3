// internal/app/store/catalog/filter.go
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/streamscope/internal/app/system/normalize"
	"github.com/dalemusser/streamscope/internal/app/system/tabular"
)

// Filter narrows the catalog the way the dashboard sidebar does. Empty
// slices mean "no restriction"; a zero YearMax means the upper bound is
// open.
type Filter struct {
	Types     []string
	Countries []string
	Ratings   []string
	YearMin   int
	YearMax   int
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return len(f.Types) == 0 && len(f.Countries) == 0 && len(f.Ratings) == 0 &&
		f.YearMin == 0 && f.YearMax == 0
}

// FilterFromQuery decodes a filter from dashboard query parameters
// (type, country, rating repeated; year_min, year_max).
func FilterFromQuery(q url.Values) Filter {
	f := Filter{
		Types:     cleanValues(q["type"]),
		Countries: cleanValues(q["country"]),
		Ratings:   cleanValues(q["rating"]),
	}
	f.YearMin = normalize.Year(q.Get("year_min"))
	f.YearMax = normalize.Year(q.Get("year_max"))
	return f
}

// Query encodes the filter back into query parameters, the inverse of
// FilterFromQuery.
func (f Filter) Query() url.Values {
	q := url.Values{}
	for _, v := range f.Types {
		q.Add("type", v)
	}
	for _, v := range f.Countries {
		q.Add("country", v)
	}
	for _, v := range f.Ratings {
		q.Add("rating", v)
	}
	if f.YearMin != 0 {
		q.Set("year_min", strconv.Itoa(f.YearMin))
	}
	if f.YearMax != 0 {
		q.Set("year_max", strconv.Itoa(f.YearMax))
	}
	return q
}

func cleanValues(vs []string) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v = normalize.QueryParam(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Matches reports whether a record passes the filter. Country matching is
// substring containment over the comma-joined country list, mirroring the
// original dashboard's behavior for multi-country titles.
func (f Filter) Matches(rec *Record) bool {
	if len(f.Types) > 0 && !contains(f.Types, rec.Type) {
		return false
	}
	if len(f.Ratings) > 0 && !contains(f.Ratings, rec.Rating) {
		return false
	}
	if len(f.Countries) > 0 {
		found := false
		for _, c := range f.Countries {
			if strings.Contains(rec.Country, c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.YearMin != 0 || f.YearMax != 0 {
		if rec.ReleaseYear == nil {
			return false
		}
		if f.YearMin != 0 && *rec.ReleaseYear < f.YearMin {
			return false
		}
		if f.YearMax != 0 && *rec.ReleaseYear > f.YearMax {
			return false
		}
	}
	return true
}

// HasType reports whether the filter selects the given content type.
// Used by templates to mark active controls.
func (f Filter) HasType(v string) bool { return contains(f.Types, v) }

// HasCountry reports whether the filter selects the given country.
func (f Filter) HasCountry(v string) bool { return contains(f.Countries, v) }

// HasRating reports whether the filter selects the given rating.
func (f Filter) HasRating(v string) bool { return contains(f.Ratings, v) }

func contains(vs []string, v string) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// Subset is the result of applying a filter: an ordered set of row indexes
// into the store.
type Subset struct {
	store *Store
	rows  []int
}

// Filter applies f and returns the matching subset in table order.
func (s *Store) Filter(f Filter) *Subset {
	sub := &Subset{store: s}
	for i := range s.records {
		if f.Matches(&s.records[i]) {
			sub.rows = append(sub.rows, i)
		}
	}
	return sub
}

// All returns the unfiltered subset.
func (s *Store) All() *Subset {
	return s.Filter(Filter{})
}

// Len returns the number of titles in the subset.
func (sub *Subset) Len() int {
	return len(sub.rows)
}

// Records iterates the subset's records in order.
func (sub *Subset) Records(fn func(*Record)) {
	for _, i := range sub.rows {
		fn(&sub.store.records[i])
	}
}

// Table materializes the subset as a table sharing the store's columns and
// row slices. The export endpoint writes this out unchanged.
func (sub *Subset) Table() *tabular.Table {
	t := &tabular.Table{
		Columns: sub.store.table.Columns,
		Rows:    make([]tabular.Row, len(sub.rows)),
	}
	for i, ri := range sub.rows {
		t.Rows[i] = sub.store.table.Rows[ri]
	}
	return t
}
