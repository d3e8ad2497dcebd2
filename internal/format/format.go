// Package format implements the string format checks offered by the dsl.
package format

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

// Email reports whether s looks like an email address: a dot-atom local
// part and a dotted domain with an alphabetic top-level label.
func Email(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailRe.MatchString(s)
}

// UUID reports whether s is a hyphenated RFC 4122 UUID. uuid.Parse also
// accepts braced and urn forms; those are rejected here.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// URL reports whether s is an absolute URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
