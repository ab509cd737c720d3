// Package cleanse implements the catalog dataset normalizer: a fixed sequence
// of table-wide transforms that turn a raw catalog export into the normalized
// file the dashboard consumes.
//
// Every step is total over its input. Per-cell coercion failures (a year that
// is not a number, a date that does not parse) silently resolve to missing so
// that one malformed cell never aborts a run. Only read/write failures and a
// raw file without the essential columns are fatal.
package cleanse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/streamscope/internal/app/system/tabular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names the pipeline knows about. Columns beyond these pass through
// untouched except for the whitespace-only sweep.
const (
	ColTitle       = "title"
	ColType        = "type"
	ColReleaseYear = "release_year"
	ColDateAdded   = "date_added"
	ColYearAdded   = "year_added"
	ColRating      = "rating"
	ColCountry     = "country"
	ColDirector    = "director"
	ColCast        = "cast"
	ColListedIn    = "listed_in"
	ColDuration    = "duration"
)

// EssentialColumns are the fields a record cannot be without. Rows missing
// any of them are dropped before coercion.
var EssentialColumns = []string{ColTitle, ColType, ColReleaseYear}

// CategoricalColumns get whitespace-only-to-missing plus trim and title-case
// treatment when present in the input.
//
// Note: cast and listed_in are comma-joined lists, and title-casing the full
// joined string flattens internal capitalization in names (e.g. "McCarthy"
// becomes "Mccarthy"). That matches the behavior of the upstream cleaner.
var CategoricalColumns = []string{ColType, ColRating, ColCountry, ColDirector, ColCast, ColListedIn}

// DateAddedFormat is the canonical form date_added is rewritten to.
const DateAddedFormat = "2006-01-02"

// dateAddedLayouts are the accepted input forms for date_added, tried in
// order. The first is the catalog export's native form ("September 25, 2021",
// sometimes with stray surrounding whitespace).
var dateAddedLayouts = []string{
	"January 2, 2006",
	DateAddedFormat,
	"1/2/2006",
}

// Report summarizes one normalizer run.
type Report struct {
	RowsRead          int
	DuplicatesRemoved int
	DroppedEssentials int
	YearCoercions     int // release_year values that failed coercion
	DateCoercions     int // date_added values that failed parsing
	RowsWritten       int
}

// titleCaser follows English casing rules; it lowercases the remainder of
// each word, so "TV-MA" style values are only fed through it where the
// cleaning contract asks for it.
var titleCaser = cases.Title(language.English)

// Run applies the full cleaning sequence to the table in place and returns
// the run report. The input must carry the essential columns; everything
// else is optional.
func Run(t *tabular.Table) (Report, error) {
	var rep Report
	rep.RowsRead = len(t.Rows)

	for _, col := range EssentialColumns {
		if !t.HasColumn(col) {
			return rep, fmt.Errorf("input is missing essential column %q", col)
		}
	}

	rep.DuplicatesRemoved = DropDuplicates(t)
	rep.DroppedEssentials = DropMissingEssentials(t)
	NormalizeCategoricals(t)
	rep.YearCoercions = CoerceReleaseYear(t)
	rep.DateCoercions = DeriveYearAdded(t)
	SweepBlanks(t)

	rep.RowsWritten = len(t.Rows)
	return rep, nil
}

// DropDuplicates removes exact-duplicate rows, keeping the first occurrence,
// and returns the number removed.
func DropDuplicates(t *tabular.Table) int {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed
}

// rowKey encodes a row for full-row equality. Missing and empty cells encode
// differently so the missing-vs-empty distinction survives deduplication.
func rowKey(row tabular.Row) string {
	var b strings.Builder
	for _, c := range row {
		if c.Valid {
			b.WriteByte('v')
			b.WriteString(strconv.Itoa(len(c.Value)))
			b.WriteByte(':')
			b.WriteString(c.Value)
		} else {
			b.WriteByte('m')
		}
	}
	return b.String()
}

// DropMissingEssentials drops rows where title, type, or release_year is
// missing, and returns the number dropped. The test uses pre-coercion
// values: a present-but-garbage release_year keeps its row here.
func DropMissingEssentials(t *tabular.Table) int {
	idx := make([]int, len(EssentialColumns))
	for i, col := range EssentialColumns {
		idx[i] = t.ColumnIndex(col)
	}

	kept := t.Rows[:0]
	dropped := 0
rows:
	for _, row := range t.Rows {
		for _, ci := range idx {
			if ci >= len(row) || row[ci].IsMissing() {
				dropped++
				continue rows
			}
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return dropped
}

// NormalizeCategoricals trims and title-cases every categorical column that
// is present. Whitespace-only values become missing instead of empty
// strings.
func NormalizeCategoricals(t *tabular.Table) {
	for _, col := range CategoricalColumns {
		ci := t.ColumnIndex(col)
		if ci < 0 {
			continue
		}
		for ri, row := range t.Rows {
			if ci >= len(row) || row[ci].IsMissing() {
				continue
			}
			v := strings.TrimSpace(row[ci].Value)
			if v == "" {
				t.Rows[ri][ci] = tabular.Missing()
				continue
			}
			t.Rows[ri][ci] = tabular.String(titleCaser.String(v))
		}
	}
}

// CoerceReleaseYear coerces release_year to a numeric value. Values that
// fail coercion become missing; the row is never dropped here. Returns the
// number of failed coercions.
func CoerceReleaseYear(t *tabular.Table) int {
	ci := t.ColumnIndex(ColReleaseYear)
	if ci < 0 {
		return 0
	}
	failures := 0
	for ri, row := range t.Rows {
		if ci >= len(row) || row[ci].IsMissing() {
			continue
		}
		year, ok := coerceYear(row[ci].Value)
		if !ok {
			t.Rows[ri][ci] = tabular.Missing()
			failures++
			continue
		}
		t.Rows[ri][ci] = tabular.String(strconv.Itoa(year))
	}
	return failures
}

// coerceYear parses a year that may be written as an integer or a float
// ("2021", " 2021 ", "2021.0").
func coerceYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// DeriveYearAdded parses date_added, rewrites it in canonical form, and
// derives year_added as its calendar year (missing when date_added is
// missing or unparseable). The year_added column is appended if absent.
// Returns the number of date values that failed to parse.
func DeriveYearAdded(t *tabular.Table) int {
	di := t.ColumnIndex(ColDateAdded)
	yi := t.AddColumn(ColYearAdded)
	if di < 0 {
		return 0
	}

	failures := 0
	for ri, row := range t.Rows {
		if di >= len(row) || row[di].IsMissing() {
			t.Rows[ri][yi] = tabular.Missing()
			continue
		}
		d, ok := ParseDateAdded(row[di].Value)
		if !ok {
			t.Rows[ri][di] = tabular.Missing()
			t.Rows[ri][yi] = tabular.Missing()
			failures++
			continue
		}
		t.Rows[ri][di] = tabular.String(d.Format(DateAddedFormat))
		t.Rows[ri][yi] = tabular.String(strconv.Itoa(d.Year()))
	}
	return failures
}

// ParseDateAdded parses a date_added value in any accepted layout.
func ParseDateAdded(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateAddedLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// SweepBlanks converts any remaining whitespace-only cell anywhere in the
// table to missing.
func SweepBlanks(t *tabular.Table) {
	for ri, row := range t.Rows {
		for ci, c := range row {
			if c.Valid && strings.TrimSpace(c.Value) == "" {
				t.Rows[ri][ci] = tabular.Missing()
			}
		}
	}
}
