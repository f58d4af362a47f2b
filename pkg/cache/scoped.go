package cache

// ScopedKeyer places every key of an inner Keyer under a namespace. The HTTP
// server scopes calendars fetched with a caller-supplied token, since a
// token owner's calendar can include private contributions that other
// callers must not see.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), TokenScope(token))
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner (the default layout when nil) so that its keys
// start with scope followed by a colon.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, scope: scope + ":"}
}

// TokenScope derives a scope from a secret without embedding it in keys.
func TokenScope(token string) string {
	return "token-" + Hash([]byte(token))[:16]
}

func (k ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.scope + k.inner.HTTPKey(namespace, key)
}

func (k ScopedKeyer) CalendarKey(username string, opts CalendarKeyOpts) string {
	return k.scope + k.inner.CalendarKey(username, opts)
}

func (k ScopedKeyer) ArtifactKey(calendarHash string, opts ArtifactKeyOpts) string {
	return k.scope + k.inner.ArtifactKey(calendarHash, opts)
}
