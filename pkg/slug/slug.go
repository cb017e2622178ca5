package slug

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
	"unicode"
)

var lastMilli atomic.Int64

// Generate derives a URL-safe slug from a display name: lowercase, strip
// everything but ASCII letters, digits and Hangul, collapse whitespace and
// underscores to hyphens, and append a base-36 timestamp suffix for
// uniqueness. Two calls in the same millisecond still yield distinct
// suffixes.
func Generate(name string, now time.Time) string {
	base := normalize(name)
	suffix := strconv.FormatInt(nextMilli(now), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func normalize(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case isHangul(r):
			b.WriteRune(r)
		case r == '_', unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	return strings.Join(fields, "-")
}

// isHangul matches the precomposed syllable block (가-힣).
func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func nextMilli(now time.Time) int64 {
	ms := now.UnixMilli()
	for {
		last := lastMilli.Load()
		candidate := ms
		if candidate <= last {
			candidate = last + 1
		}
		if lastMilli.CompareAndSwap(last, candidate) {
			return candidate
		}
	}
}
