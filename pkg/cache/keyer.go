package cache

import "strings"

// CalendarKeyOpts identifies one fetched calendar.
type CalendarKeyOpts struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// ArtifactKeyOpts identifies one rendered document.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Mode     string  `json:"mode"`
	Seed     uint64  `json:"seed"`
	Tooltips bool    `json:"tooltips"`
	Animate  bool    `json:"animate"`
	Label    string  `json:"label,omitempty"`
	Textures string  `json:"textures,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	NoScript bool    `json:"no_script,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// HTTPKey returns the key of a cached HTTP response.
	HTTPKey(namespace, key string) string
	// CalendarKey returns the key of a user's calendar for a date range.
	CalendarKey(username string, opts CalendarKeyOpts) string
	// ArtifactKey returns the key of a document rendered from the calendar
	// whose content hash is calendarHash.
	ArtifactKey(calendarHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// CalendarKey lowercases username: GitHub logins are case-insensitive.
func (DefaultKeyer) CalendarKey(username string, opts CalendarKeyOpts) string {
	return hashKey("calendar", strings.ToLower(username), opts)
}

func (DefaultKeyer) ArtifactKey(calendarHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", calendarHash, opts)
}

var _ Keyer = DefaultKeyer{}
