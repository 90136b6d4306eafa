package repository

import "strings"

// likeEscaper escapes LIKE pattern metacharacters. Record keys use "_" as
// their segment separator, which LIKE treats as a single-character wildcard,
// so prefixes must be escaped before being used in a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePrefix returns prefix with LIKE metacharacters escaped using
// backslash, for use with ESCAPE '\' patterns.
func escapeLikePrefix(prefix string) string {
	return likeEscaper.Replace(prefix)
}
