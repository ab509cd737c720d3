// Package testutil provides helpers for testing HTTP handlers and
// catalog fixtures.
package testutil

import (
	"strings"
	"testing"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/tabular"
)

// sampleCSV is a small normalized catalog covering both types, several
// countries and genres, a missing rating, and a spread of years.
const sampleCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in
s1,Movie,Alpha,Ann Lee,Bo Park,United States,2021-09-25,2020,Pg-13,90 min,"Dramas, Thrillers"
s2,Tv Show,Beta,,Cy Diaz,"United States, Canada",2020-03-01,2019,Tv-Ma,2 Seasons,"Comedies"
s3,Movie,Gamma,Dee Wong,,"India",2019-06-15,2018,,110 min,"Dramas, International Movies"
s4,Tv Show,Delta,,,,2021-01-10,2021,Tv-14,1 Season,"Kids' Tv"
`

// SampleCatalog returns a catalog store loaded from the built-in
// fixture CSV. Handler tests share this so view models and
// aggregations have predictable values.
func SampleCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	tbl, err := tabular.ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("failed to read fixture CSV: %v", err)
	}
	return catalog.FromTable(tbl)
}

// CatalogFromCSV builds a catalog store from arbitrary CSV text, for
// tests that need a shape the shared fixture does not cover.
func CatalogFromCSV(t *testing.T, csvText string) *catalog.Store {
	t.Helper()

	tbl, err := tabular.ReadCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	return catalog.FromTable(tbl)
}
