package postgres

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	preparedBinaryParam  = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

// NormalizeDSN turns on lib/pq's disable_prepared_binary_result for both URL
// and key=value connection strings. A value already present in raw is kept.
func NormalizeDSN(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	if !isURLDSN(raw) {
		if _, ok := keywordValue(raw, preparedBinaryParam); ok {
			return raw
		}
		return strings.TrimSpace(raw) + " " + preparedBinaryParam + "=yes"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DatabaseName reports the dbname of a connection string, or "" when none is set.
func DatabaseName(raw string) string {
	raw = strings.TrimSpace(raw)
	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return strings.Trim(parsed.Path, "/ ")
	}
	name, _ := keywordValue(raw, "dbname")
	return name
}

// FormatQueryForTrace collapses whitespace and caps the statement length for span attributes.
func FormatQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

func isURLDSN(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

func keywordValue(dsn, key string) (string, bool) {
	for _, token := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(token, "=")
		if !ok || k != key {
			continue
		}
		return strings.Trim(v, `"'`), true
	}
	return "", false
}
