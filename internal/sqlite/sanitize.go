package sqlite

import (
	"regexp"
	"strings"

	"github.com/mesh-intelligence/labdb/pkg/types"
)

// validIdentifier is the allow-list for names interpolated into SQL text.
// Result-table names carry hyphens ("results-1-5"), so the set is letters,
// digits, underscore and hyphen; everything else is rejected.
var validIdentifier = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateIdentifier checks name against the allow-list and returns it
// unchanged, or *types.InvalidIdentifierError carrying the rejected value.
// This is the only gate between caller-supplied table names and raw SQL;
// typed parameters go through bound placeholders instead.
func ValidateIdentifier(name string) (string, error) {
	if !validIdentifier.MatchString(name) {
		return "", &types.InvalidIdentifierError{Name: name}
	}
	return name, nil
}

// QuoteIdentifier wraps a validated identifier in double quotes for
// interpolation. Hyphenated result-table names are not bare identifiers in
// SQL, so every interpolated name is quoted. Embedded quotes are doubled,
// though the allow-list already excludes them.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
