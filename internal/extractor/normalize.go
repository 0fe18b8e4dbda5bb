package extractor

import (
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// Normalize returns the canonical form of a domain name or false if the value
// is not a usable domain.
//
// The canonical form is lower-case ASCII (internationalized names are
// converted to their IDNA "xn--" form) without trailing dots. It must contain
// a dot that is not the first character, its final label must be at least two
// characters long and every label may only hold letters, digits, hyphens and
// underscores. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) (string, bool) {
	s = strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), ".")
	if s == "" {
		return "", false
	}

	if !isASCII(s) {
		ascii, err := idna.Lookup.ToASCII(s)
		if err != nil {
			return "", false
		}
		s = strings.ToLower(ascii)
	}

	if strings.IndexByte(s, '.') <= 0 {
		return "", false
	}
	if len(s)-strings.LastIndexByte(s, '.')-1 < 2 {
		return "", false
	}

	for _, label := range strings.Split(s, ".") {
		if !validLabel(label) {
			return "", false
		}
	}

	// label and total length limits
	if _, ok := dns.IsDomainName(s); !ok {
		return "", false
	}

	return s, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}

	return true
}
