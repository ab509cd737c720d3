// Package filterstate persists a visitor's dashboard filter selection in a
// signed cookie session, so a saved filter survives across visits. There are
// no user accounts behind this: the session carries only the encoded filter.
package filterstate

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const filterKey = "saved_filter"

// DefaultSessionName is used when no cookie name is configured.
const DefaultSessionName = "streamscope-session"

// ConfigError is returned when session configuration is invalid.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Manager encapsulates the cookie session store and configuration.
// Use NewManager to create an instance.
type Manager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// NewManager creates a Manager.
//
// Parameters:
//   - sessionKey: signing key for cookies; empty in dev mode generates a
//     random per-process key (saved filters then reset on restart)
//   - name: session cookie name (DefaultSessionName if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: cookie lifetime
//   - secure: if true, cookies are Secure; a strong key is then required
//   - logger: zap logger for session warnings
func NewManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	key := []byte(sessionKey)
	weak := len(key) < 32
	switch {
	case len(key) == 0 && secure:
		return nil, &ConfigError{Message: "session key is empty; provide ≥32 random chars in production"}
	case len(key) == 0:
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("session key not configured; using a random per-process key")
	case weak && secure:
		return nil, &ConfigError{Message: "session key is too weak for production; provide ≥32 random chars"}
	case weak:
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)))
	}

	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("filter session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &Manager{store: store, logger: logger, name: name}, nil
}

// SessionName returns the configured session cookie name.
func (m *Manager) SessionName() string {
	return m.name
}

// Load returns the visitor's saved filter, if any. Decode failures (expired
// or tampered cookies) are treated as no saved filter.
func (m *Manager) Load(r *http.Request) (catalog.Filter, bool) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// gorilla returns a fresh session alongside the error; a stale
		// cookie just means no saved filter.
		return catalog.Filter{}, false
	}
	raw, ok := sess.Values[filterKey].(string)
	if !ok || raw == "" {
		return catalog.Filter{}, false
	}
	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return catalog.Filter{}, false
	}
	q, err := url.ParseQuery(string(decoded))
	if err != nil {
		return catalog.Filter{}, false
	}
	return catalog.FilterFromQuery(q), true
}

// Save stores the filter in the visitor's session.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, f catalog.Filter) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[filterKey] = base64.URLEncoding.EncodeToString([]byte(f.Query().Encode()))
	return sess.Save(r, w)
}

// Clear removes the saved filter by expiring the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	delete(sess.Values, filterKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
