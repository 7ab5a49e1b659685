// Package htmlsanitize strips HTML from user-supplied free text.
//
// Card fields are plain text. Anything that looks like markup (tags,
// attributes, event handlers) is removed before the value is stored,
// so nothing executable can survive to render time. The feed templates
// escape again on output; this is the storage-side half of that.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitize removes all HTML tags and attributes from s and trims
// surrounding whitespace. The result never contains '<' or '>'.
func Sanitize(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
