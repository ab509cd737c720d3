// Package viewdata provides the base view model embedded by every page's
// view model. StreamScope has no user accounts, so the base carries page
// context, the CSRF token for the filter forms, and a snapshot of the loaded
// catalog for the header strip.
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// SiteName is the display name used in page titles and the header.
const SiteName = "StreamScope"

// DatasetInfo is the loaded-catalog snapshot shown in the header of every
// page. It is set once at startup, after the catalog loads.
type DatasetInfo struct {
	Path         string
	Titles       int
	YearMin      int
	YearMax      int
	CountryCount int
	GenreCount   int
}

var datasetInfo DatasetInfo

// SetDatasetInfo stores the catalog snapshot for inclusion in BaseVM.
// Call once from bootstrap after the catalog is loaded.
func SetDatasetInfo(info DatasetInfo) {
	datasetInfo = info
}

// BaseVM contains common fields for all view models. Embed it in
// feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF token for forms (use in a hidden input field)
	CSRFToken string

	// Loaded catalog snapshot for the header strip
	Dataset DatasetInfo
}

// New creates a BaseVM for the request. This is the standard way to build
// the base for most handlers.
func New(r *http.Request) BaseVM {
	return BaseVM{
		SiteName:    SiteName,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
		Dataset:     datasetInfo,
	}
}

// NewBaseVM creates a fully populated BaseVM with a title and a default
// back-link target.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}
