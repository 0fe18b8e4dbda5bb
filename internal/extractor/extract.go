package extractor

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the best-guess domain referenced by a single CSV cell.
//
// Rules, applied in order:
//   - trim and lower-case; blank cells yield nothing
//   - email addresses: the value must split on "@" into exactly two non-empty
//     parts; the part after the "@" is kept
//   - values starting with http:// or https:// are parsed as URLs and their
//     host name is kept
//   - a leading "www." is removed
//   - anything from the first "/" on is dropped
//   - the result must contain a "." with a non-empty label after the last one
//     and be at least 3 characters long
func ExtractDomain(cell string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(cell))
	if s == "" {
		return "", false
	}

	if strings.Contains(s, "@") {
		parts := strings.Split(s, "@")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", false
		}
		s = parts[1]
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", false
		}
		s = u.Hostname()
	}

	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}

	last := strings.LastIndexByte(s, '.')
	if last < 0 || last == len(s)-1 {
		return "", false
	}
	if len(s) < 3 {
		return "", false
	}

	return s, true
}
