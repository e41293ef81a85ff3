// Package maplink builds map-search URLs for item locations. The location
// string is passed through verbatim (URL-escaped); whether it geocodes is the
// map service's problem.
package maplink

import "net/url"

const searchBase = "https://www.google.com/maps/search/?api=1&query="

// SearchURL returns a map search link for a free-text location, or "" for an
// empty location.
func SearchURL(location string) string {
	if location == "" {
		return ""
	}
	return searchBase + url.QueryEscape(location)
}
