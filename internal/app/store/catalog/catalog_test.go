package catalog

import (
	"strings"
	"testing"

	"github.com/dalemusser/streamscope/internal/app/system/tabular"
)

const testCSV = `title,type,release_year,date_added,rating,country,director,cast,listed_in,duration,year_added
Alpha,Movie,2020,2021-09-25,Pg,United States,Someone,Actor A,Dramas,90 min,2021
Beta,Tv Show,2019,2020-01-10,Tv-Ma,"United States, Canada",,Actor B,"Comedies, Dramas",2 Seasons,2020
Gamma,Movie,2021,2021-03-15,,,,,,100 min,2021
Delta,Movie,1995,,Pg,France,,,Dramas,120 min,
`

func load(t *testing.T) *Store {
	t.Helper()
	tbl, err := tabular.ReadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	return FromTable(tbl)
}

func TestLoadPlaceholders(t *testing.T) {
	s := load(t)

	gamma := s.Record(2)
	if gamma.Rating != NotRated {
		t.Errorf("missing rating = %q, want %q", gamma.Rating, NotRated)
	}
	if gamma.Country != UnknownCountry {
		t.Errorf("missing country = %q, want %q", gamma.Country, UnknownCountry)
	}
	if gamma.Genres != UnknownGenre {
		t.Errorf("missing listed_in = %q, want %q", gamma.Genres, UnknownGenre)
	}

	alpha := s.Record(0)
	if alpha.Rating != "Pg" || alpha.Country != "United States" {
		t.Errorf("present fields were replaced: %+v", alpha)
	}
}

func TestLoadDerivations(t *testing.T) {
	s := load(t)

	alpha := s.Record(0)
	if alpha.DurationMins == nil || *alpha.DurationMins != 90 {
		t.Errorf("alpha DurationMins = %v, want 90", alpha.DurationMins)
	}
	beta := s.Record(1)
	if beta.DurationMins != nil {
		t.Errorf("tv show got DurationMins = %v, want nil", *beta.DurationMins)
	}

	// Delta has no date_added and no year_added.
	if s.Record(3).YearAdded != nil {
		t.Errorf("delta YearAdded = %v, want nil", *s.Record(3).YearAdded)
	}
	// Beta's year_added comes straight from the column.
	if beta.YearAdded == nil || *beta.YearAdded != 2020 {
		t.Errorf("beta YearAdded = %v, want 2020", beta.YearAdded)
	}
}

func TestYearAddedRederived(t *testing.T) {
	// year_added column absent entirely: re-derive from date_added.
	csv := "title,type,release_year,date_added\nAlpha,Movie,2020,2021-09-25\n"
	tbl, err := tabular.ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	s := FromTable(tbl)
	if y := s.Record(0).YearAdded; y == nil || *y != 2021 {
		t.Errorf("YearAdded = %v, want 2021", y)
	}
}

func TestFilterMatches(t *testing.T) {
	s := load(t)

	tests := []struct {
		name string
		f    Filter
		want int
	}{
		{"no filter", Filter{}, 4},
		{"by type", Filter{Types: []string{"Movie"}}, 3},
		{"by rating", Filter{Ratings: []string{"Pg"}}, 2},
		{"by country substring", Filter{Countries: []string{"Canada"}}, 1},
		{"multi country", Filter{Countries: []string{"Canada", "France"}}, 2},
		{"year range", Filter{YearMin: 2019, YearMax: 2020}, 2},
		{"year lower bound only", Filter{YearMin: 1}, 4},
		{"combined", Filter{Types: []string{"Movie"}, YearMin: 2020}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Filter(tt.f).Len(); got != tt.want {
				t.Errorf("Filter(%+v).Len() = %d, want %d", tt.f, got, tt.want)
			}
		})
	}
}

func TestFilterQueryRoundTrip(t *testing.T) {
	f := Filter{
		Types:     []string{"Movie"},
		Countries: []string{"France", "Canada"},
		Ratings:   []string{"Pg"},
		YearMin:   1990,
		YearMax:   2021,
	}

	got := FilterFromQuery(f.Query())
	if len(got.Types) != 1 || got.Types[0] != "Movie" {
		t.Errorf("Types = %v", got.Types)
	}
	if len(got.Countries) != 2 {
		t.Errorf("Countries = %v", got.Countries)
	}
	if got.YearMin != 1990 || got.YearMax != 2021 {
		t.Errorf("years = %d..%d", got.YearMin, got.YearMax)
	}
}

func TestAggregations(t *testing.T) {
	sub := load(t).All()

	types := sub.TypeCounts()
	if len(types) != 2 || types[0].Label != "Movie" || types[0].Count != 3 {
		t.Errorf("TypeCounts = %v", types)
	}

	genres := sub.TopGenres(10)
	if len(genres) == 0 || genres[0].Label != "Dramas" || genres[0].Count != 3 {
		t.Errorf("TopGenres = %v", genres)
	}

	countries := sub.TopCountries(5)
	for _, c := range countries {
		if c.Label == UnknownCountry {
			t.Errorf("TopCountries includes %q", UnknownCountry)
		}
	}
	if len(countries) == 0 || countries[0].Label != "United States" || countries[0].Count != 2 {
		t.Errorf("TopCountries = %v", countries)
	}

	if got := sub.RecentCount(2020); got != 2 {
		t.Errorf("RecentCount(2020) = %d, want 2", got)
	}
	if got := sub.MoviePercent(); got != 75 {
		t.Errorf("MoviePercent = %v, want 75", got)
	}
}

func TestTimelines(t *testing.T) {
	sub := load(t).All()

	rel := sub.ReleaseTimeline()
	if len(rel) != 4 || rel[0].Year != 1995 || rel[3].Year != 2021 {
		t.Errorf("ReleaseTimeline = %v", rel)
	}

	added := sub.AddedTimeline()
	// Delta has no year_added and is skipped.
	total := 0
	for _, yc := range added {
		total += yc.Total
	}
	if total != 3 {
		t.Errorf("AddedTimeline covers %d titles, want 3: %v", total, added)
	}
}

func TestSummaries(t *testing.T) {
	sub := load(t).All()

	rel := sub.ReleaseYearSummary()
	if rel.N != 4 {
		t.Fatalf("ReleaseYearSummary.N = %d, want 4", rel.N)
	}
	if rel.Median != 2019.5 {
		t.Errorf("median = %v, want 2019.5", rel.Median)
	}

	dur := sub.DurationSummary()
	if dur.N != 3 {
		t.Fatalf("DurationSummary.N = %d, want 3", dur.N)
	}
	if dur.Median != 100 {
		t.Errorf("duration median = %v, want 100", dur.Median)
	}
}

func TestSubsetTableKeepsSchema(t *testing.T) {
	s := load(t)
	sub := s.Filter(Filter{Types: []string{"Movie"}})

	tbl := sub.Table()
	if len(tbl.Columns) != len(s.Columns()) {
		t.Fatalf("columns changed: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(tbl.Rows))
	}
	// The underlying cells pass through unchanged: Gamma's missing rating
	// stays missing, not "Not Rated".
	if !tbl.Cell(1, "rating").IsMissing() {
		t.Errorf("export view has placeholder text in it: %+v", tbl.Cell(1, "rating"))
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"United States", 1},
		{"United States, Canada", 2},
		{"a, , b", 2},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); len(got) != tt.want {
			t.Errorf("SplitList(%q) = %v, want %d parts", tt.in, got, tt.want)
		}
	}
}
