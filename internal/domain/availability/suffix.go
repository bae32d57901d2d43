package availability

import "strings"

// DefaultSuffixes is the ordered set of top-level suffixes quoted for every
// query when configuration does not override it.
var DefaultSuffixes = []string{
	"com", "nl", "org", "net", "io", "ai", "app", "dev", "tech", "co",
	"design", "blog", "shop", "store", "online", "website", "site", "host",
	"hosting", "cloud",
}

// NormalizeSuffix lowercases s and drops surrounding space and one leading
// dot, so ".COM" and "com" name the same suffix.
func NormalizeSuffix(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
}
