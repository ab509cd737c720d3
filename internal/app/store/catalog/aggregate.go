// internal/app/store/catalog/aggregate.go
package catalog

import (
	"sort"
)

// Count is a labeled tally used by the chart endpoints.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// YearCount is a per-year tally for timeline charts.
type YearCount struct {
	Year   int `json:"year"`
	Movies int `json:"movies"`
	Shows  int `json:"shows"`
	Total  int `json:"total"`
}

// Summary holds mean/median/mode for a numeric column.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   int     `json:"mode"`
	N      int     `json:"n"`
}

// TypeCounts tallies titles by content type, largest first.
func (sub *Subset) TypeCounts() []Count {
	return sub.countBy(func(rec *Record) []string {
		if rec.Type == "" {
			return nil
		}
		return []string{rec.Type}
	}, 0)
}

// TopGenres explodes the comma-joined genre lists and returns the n most
// common genres.
func (sub *Subset) TopGenres(n int) []Count {
	return sub.countBy(func(rec *Record) []string {
		return SplitList(rec.Genres)
	}, n)
}

// TopCountries explodes the comma-joined country lists and returns the n
// most common countries. The Unknown placeholder is excluded; it would
// otherwise dominate the chart.
func (sub *Subset) TopCountries(n int) []Count {
	return sub.countBy(func(rec *Record) []string {
		parts := SplitList(rec.Country)
		out := parts[:0]
		for _, p := range parts {
			if p != UnknownCountry {
				out = append(out, p)
			}
		}
		return out
	}, n)
}

// RatingCounts tallies titles by rating, largest first.
func (sub *Subset) RatingCounts() []Count {
	return sub.countBy(func(rec *Record) []string {
		if rec.Rating == "" {
			return nil
		}
		return []string{rec.Rating}
	}, 0)
}

// countBy tallies the labels produced per record, sorts by count descending
// (label ascending on ties, so output is stable), and truncates to n when
// n > 0.
func (sub *Subset) countBy(labels func(*Record) []string, n int) []Count {
	tally := make(map[string]int)
	sub.Records(func(rec *Record) {
		for _, l := range labels(rec) {
			tally[l]++
		}
	})

	out := make([]Count, 0, len(tally))
	for l, c := range tally {
		out = append(out, Count{Label: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ReleaseTimeline tallies titles by release year, split movie/show, sorted
// by year.
func (sub *Subset) ReleaseTimeline() []YearCount {
	return sub.yearCounts(func(rec *Record) *int { return rec.ReleaseYear })
}

// AddedTimeline tallies titles by the year they were added to the catalog,
// sorted by year. Records with no year_added are skipped.
func (sub *Subset) AddedTimeline() []YearCount {
	return sub.yearCounts(func(rec *Record) *int { return rec.YearAdded })
}

func (sub *Subset) yearCounts(year func(*Record) *int) []YearCount {
	byYear := make(map[int]*YearCount)
	sub.Records(func(rec *Record) {
		y := year(rec)
		if y == nil {
			return
		}
		yc := byYear[*y]
		if yc == nil {
			yc = &YearCount{Year: *y}
			byYear[*y] = yc
		}
		yc.Total++
		if rec.IsMovie() {
			yc.Movies++
		} else {
			yc.Shows++
		}
	})

	out := make([]YearCount, 0, len(byYear))
	for _, yc := range byYear {
		out = append(out, *yc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// MoviePercent returns the share of movies in the subset, 0-100.
func (sub *Subset) MoviePercent() float64 {
	if len(sub.rows) == 0 {
		return 0
	}
	movies := 0
	sub.Records(func(rec *Record) {
		if rec.IsMovie() {
			movies++
		}
	})
	return float64(movies) / float64(len(sub.rows)) * 100
}

// RecentCount counts titles released in or after the given year.
func (sub *Subset) RecentCount(since int) int {
	n := 0
	sub.Records(func(rec *Record) {
		if rec.ReleaseYear != nil && *rec.ReleaseYear >= since {
			n++
		}
	})
	return n
}

// CountryCount returns the number of distinct individual countries in the
// subset, Unknown included (it represents real rows on the metric card).
func (sub *Subset) CountryCount() int {
	seen := make(map[string]struct{})
	sub.Records(func(rec *Record) {
		for _, c := range SplitList(rec.Country) {
			seen[c] = struct{}{}
		}
	})
	return len(seen)
}

// ReleaseYearSummary summarizes release_year over the subset.
func (sub *Subset) ReleaseYearSummary() Summary {
	return sub.summarize(func(rec *Record) *int { return rec.ReleaseYear })
}

// YearAddedSummary summarizes year_added over the subset.
func (sub *Subset) YearAddedSummary() Summary {
	return sub.summarize(func(rec *Record) *int { return rec.YearAdded })
}

// DurationSummary summarizes movie duration minutes over the subset.
func (sub *Subset) DurationSummary() Summary {
	return sub.summarize(func(rec *Record) *int { return rec.DurationMins })
}

// DurationByRating returns, per rating, the median movie duration in
// minutes, largest first. Ratings with no timed movies are omitted.
func (sub *Subset) DurationByRating() []Count {
	byRating := make(map[string][]int)
	sub.Records(func(rec *Record) {
		if rec.DurationMins != nil && rec.Rating != "" {
			byRating[rec.Rating] = append(byRating[rec.Rating], *rec.DurationMins)
		}
	})

	out := make([]Count, 0, len(byRating))
	for rating, mins := range byRating {
		sort.Ints(mins)
		out = append(out, Count{Label: rating, Count: median(mins)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (sub *Subset) summarize(value func(*Record) *int) Summary {
	var vals []int
	sub.Records(func(rec *Record) {
		if v := value(rec); v != nil {
			vals = append(vals, *v)
		}
	})
	if len(vals) == 0 {
		return Summary{}
	}
	sort.Ints(vals)

	sum := 0
	for _, v := range vals {
		sum += v
	}

	return Summary{
		Mean:   float64(sum) / float64(len(vals)),
		Median: medianFloat(vals),
		Mode:   mode(vals),
		N:      len(vals),
	}
}

// median of a sorted slice, truncated to int for display.
func median(sorted []int) int {
	return int(medianFloat(sorted))
}

func medianFloat(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// mode of a sorted slice; the smallest value wins ties, matching how the
// original dashboard picked the first mode.
func mode(sorted []int) int {
	best, bestCount := sorted[0], 0
	cur, curCount := sorted[0], 0
	for _, v := range sorted {
		if v == cur {
			curCount++
		} else {
			cur, curCount = v, 1
		}
		if curCount > bestCount {
			best, bestCount = cur, curCount
		}
	}
	return best
}
