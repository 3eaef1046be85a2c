// Package slug derives URL-safe session identifiers from display names and
// resolves them to a globally unique value against the backend.
package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// fallbackBase is used when a name contains no alphanumeric characters at
// all, so that session creation never fails on a degenerate name.
const fallbackBase = "session"

// maxAttempts bounds the uniqueness loop. A hundred collisions on one base
// name means something else is wrong.
const maxAttempts = 100

// ErrExhausted is returned when no free slug was found within maxAttempts.
var ErrExhausted = errors.New("no free slug available")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make turns a display name into a URL-safe slug: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single "-", leading and
// trailing "-" stripped. May return "" for names with no alphanumerics.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ResolveUnique finds a slug not yet taken according to exists, trying base,
// base-1, base-2, ... in order. exists reports whether a session already
// holds the candidate; its errors propagate unchanged. The uniqueness check
// is inherently racy against concurrent creations - the insert's own unique
// constraint is the caller's last line of defense.
func ResolveUnique(base string, exists func(slug string) (bool, error)) (string, error) {
	if base == "" {
		base = fallbackBase
	}

	candidate := base
	for i := 1; i <= maxAttempts; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", fmt.Errorf("%w: tried %d variants of %q", ErrExhausted, maxAttempts, base)
}
