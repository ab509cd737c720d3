// Package catalog holds the normalized catalog in memory for the dashboard.
//
// The store is loaded once at startup from the normalized file and never
// written back. It keeps two views of the data: the raw table, so the export
// endpoint can emit filtered rows with the schema unchanged, and parsed
// records with the defensive re-derivations the dashboard applies on top of
// the normalizer's output (re-coerced years, duration minutes, display
// placeholders for missing country/rating/genres).
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/streamscope/internal/app/system/cleanse"
	"github.com/dalemusser/streamscope/internal/app/system/normalize"
	"github.com/dalemusser/streamscope/internal/app/system/tabular"
	"go.uber.org/zap"
)

// Display placeholders for missing fields, applied to records but never to
// the underlying table.
const (
	UnknownCountry = "Unknown"
	NotRated       = "Not Rated"
	UnknownGenre   = "Unknown Genre"
)

// Record is one catalog entry as the dashboard sees it.
type Record struct {
	Title    string
	Type     string
	Rating   string // placeholder-filled
	Country  string // placeholder-filled, comma-joined list
	Director string
	Cast     string
	Genres   string // placeholder-filled, comma-joined list
	Duration string

	ReleaseYear  *int
	YearAdded    *int
	DateAdded    *time.Time
	DurationMins *int // leading minutes of duration, movies only
}

// IsMovie reports whether the record is a movie. The comparison is
// case-insensitive because title-casing upstream produces "Tv Show" and
// "Movie" but older files may differ.
func (rec *Record) IsMovie() bool {
	return strings.EqualFold(rec.Type, "Movie")
}

// Store is the loaded catalog.
type Store struct {
	table   *tabular.Table
	records []Record
}

// durationMinsRe extracts the leading minute count from values like "90 min".
var durationMinsRe = regexp.MustCompile(`(\d+)`)

// Load reads a normalized catalog file into a Store. A missing or malformed
// file is fatal for the dashboard, so the error is returned as-is for the
// caller to report.
func Load(path string, logger *zap.Logger) (*Store, error) {
	tbl, err := tabular.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	s := FromTable(tbl)
	logger.Info("catalog loaded",
		zap.String("path", path),
		zap.Int("titles", len(s.records)),
		zap.Int("columns", len(tbl.Columns)),
	)
	return s, nil
}

// FromTable builds a Store over an already-parsed table.
func FromTable(tbl *tabular.Table) *Store {
	s := &Store{
		table:   tbl,
		records: make([]Record, len(tbl.Rows)),
	}
	for i := range tbl.Rows {
		s.records[i] = parseRecord(tbl, i)
	}
	return s
}

// parseRecord applies the dashboard's defensive coercions to one row.
func parseRecord(tbl *tabular.Table, row int) Record {
	rec := Record{
		Title:    cellText(tbl, row, cleanse.ColTitle),
		Type:     cellText(tbl, row, cleanse.ColType),
		Rating:   cellTextOr(tbl, row, cleanse.ColRating, NotRated),
		Country:  cellTextOr(tbl, row, cleanse.ColCountry, UnknownCountry),
		Director: cellText(tbl, row, cleanse.ColDirector),
		Cast:     cellText(tbl, row, cleanse.ColCast),
		Genres:   cellTextOr(tbl, row, cleanse.ColListedIn, UnknownGenre),
		Duration: cellText(tbl, row, cleanse.ColDuration),
	}

	rec.ReleaseYear = cellYear(tbl, row, cleanse.ColReleaseYear)

	if c := tbl.Cell(row, cleanse.ColDateAdded); !c.IsMissing() {
		if d, ok := cleanse.ParseDateAdded(c.Value); ok {
			rec.DateAdded = &d
		}
	}

	// year_added: trust the normalized column, re-derive from date_added
	// when it is absent.
	rec.YearAdded = cellYear(tbl, row, cleanse.ColYearAdded)
	if rec.YearAdded == nil && rec.DateAdded != nil {
		y := rec.DateAdded.Year()
		rec.YearAdded = &y
	}

	if rec.IsMovie() && rec.Duration != "" {
		if m := durationMinsRe.FindString(rec.Duration); m != "" {
			if mins, err := strconv.Atoi(m); err == nil {
				rec.DurationMins = &mins
			}
		}
	}

	return rec
}

func cellText(tbl *tabular.Table, row int, col string) string {
	c := tbl.Cell(row, col)
	if c.IsMissing() {
		return ""
	}
	return c.Value
}

func cellTextOr(tbl *tabular.Table, row int, col, placeholder string) string {
	if v := cellText(tbl, row, col); v != "" {
		return v
	}
	return placeholder
}

func cellYear(tbl *tabular.Table, row int, col string) *int {
	c := tbl.Cell(row, col)
	if c.IsMissing() {
		return nil
	}
	s := strings.TrimSpace(c.Value)
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	// Tolerate float renderings like "2021.0" from older cleaners.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		n := int(f)
		return &n
	}
	return nil
}

// Columns returns the table's column order.
func (s *Store) Columns() []string {
	return s.table.Columns
}

// Len returns the number of titles in the catalog.
func (s *Store) Len() int {
	return len(s.records)
}

// Record returns the parsed record at the given index.
func (s *Store) Record(i int) *Record {
	return &s.records[i]
}

// YearRange returns the minimum and maximum release years present, or ok
// false when no record carries one.
func (s *Store) YearRange() (min, max int, ok bool) {
	for i := range s.records {
		y := s.records[i].ReleaseYear
		if y == nil {
			continue
		}
		if !ok {
			min, max, ok = *y, *y, true
			continue
		}
		if *y < min {
			min = *y
		}
		if *y > max {
			max = *y
		}
	}
	return min, max, ok
}

// Types returns the distinct content types, sorted.
func (s *Store) Types() []string {
	return s.distinct(func(rec *Record) string { return rec.Type })
}

// Ratings returns the distinct ratings, sorted.
func (s *Store) Ratings() []string {
	return s.distinct(func(rec *Record) string { return rec.Rating })
}

// Countries returns the distinct individual countries, sorted, with the
// Unknown placeholder excluded. Comma-joined lists are split apart.
func (s *Store) Countries() []string {
	seen := make(map[string]struct{})
	for i := range s.records {
		for _, c := range SplitList(s.records[i].Country) {
			if c == UnknownCountry {
				continue
			}
			seen[c] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// GenreCount returns the number of distinct individual genres.
func (s *Store) GenreCount() int {
	seen := make(map[string]struct{})
	for i := range s.records {
		for _, g := range SplitList(s.records[i].Genres) {
			seen[g] = struct{}{}
		}
	}
	return len(seen)
}

func (s *Store) distinct(key func(*Record) string) []string {
	seen := make(map[string]struct{})
	for i := range s.records {
		if v := key(&s.records[i]); v != "" {
			seen[v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SplitList splits a comma-joined multi-value field (country, listed_in,
// cast) into its trimmed parts.
func SplitList(s string) []string {
	return normalize.ListField(s)
}
