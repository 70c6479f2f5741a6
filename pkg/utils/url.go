package utils

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether str is an absolute http(s) URL with a host
func IsValidURL(str string) bool {
	u, err := url.Parse(str)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// JoinPath appends elem to base, avoiding duplicate slashes
func JoinPath(base string, elem ...string) string {
	out := strings.TrimRight(base, "/")
	for _, e := range elem {
		out += "/" + strings.Trim(e, "/")
	}
	return out
}
