// Package urlutil holds the URL transformations panes depend on. They are
// plain functions over string URLs, mirroring how hosts hand URLs around.
package urlutil

import (
	neturl "net/url"
	"strconv"
	"strings"
	"time"
)

// CacheBusterParam is the query parameter forcing the embedded content to
// reload rather than reuse a cached render.
const CacheBusterParam = "force_reload"

// textFragmentPrefix is the text-fragment directive understood by browsers.
const textFragmentPrefix = ":~:text="

// WithCacheBuster returns raw with the force_reload parameter set to the
// given instant in epoch milliseconds, replacing any previous value. The
// fragment, if any, is preserved.
func WithCacheBuster(raw string, now time.Time) (string, error) {
	u, err := neturl.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(CacheBusterParam, strconv.FormatInt(now.UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// WithTextFragment appends a :~:text= directive for the given anchor text so
// the opened pane scrolls to and highlights it. A URL that already carries a
// fragment is returned unchanged: the author's anchor wins over ours.
func WithTextFragment(raw, text string) (string, error) {
	u, err := neturl.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if u.Fragment != "" || text == "" {
		return u.String(), nil
	}
	encoded := strings.ReplaceAll(neturl.QueryEscape(text), "+", "%20")
	u.Fragment = textFragmentPrefix + text
	u.RawFragment = textFragmentPrefix + encoded
	return u.String(), nil
}

// StripCacheBuster removes the force_reload parameter. Hosts use it when
// comparing a pane's URL against the anchor it was opened from.
func StripCacheBuster(raw string) (string, error) {
	u, err := neturl.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Del(CacheBusterParam)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
