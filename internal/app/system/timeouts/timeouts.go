// Package timeouts provides centralized timeout values for handler
// operations. The dashboard serves everything from memory, so two tiers are
// enough: one for page and API handlers, one for the streaming CSV export.
package timeouts

import "time"

const (
	// Handler bounds ordinary page and JSON API requests.
	Handler = 10 * time.Second
	// Export bounds the filtered CSV download, which can stream the whole
	// catalog.
	Export = 60 * time.Second
)
