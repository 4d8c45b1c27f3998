package logger

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Keys whose values are personal data and never logged in full.
var sensitiveKeyPatterns = []string{
	"dob",
	"person",
}

// Keys whose values are masked down to their first character.
var maskedKeyPatterns = []string{
	"household_name",
}

// redactedValue is the placeholder for redacted personal data.
const redactedValue = "***REDACTED***"

// redactSensitive rewrites attributes that carry personal data.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if IsMaskedKey(a.Key) && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, MaskName(a.Value.String()))
	}
	if IsSensitiveKey(a.Key) {
		if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
			return a
		}
		return slog.String(a.Key, redactedValue)
	}
	return a
}

// MaskName keeps the first character of a name and hides the rest.
func MaskName(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r) + "***"
}

// IsSensitiveKey checks if a key name refers to personal data.
func IsSensitiveKey(key string) bool {
	return matchesAny(key, sensitiveKeyPatterns)
}

// IsMaskedKey checks if a key name refers to a name that is logged masked.
func IsMaskedKey(key string) bool {
	return matchesAny(key, maskedKeyPatterns)
}

func matchesAny(key string, patterns []string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range patterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
