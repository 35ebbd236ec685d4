package util

import "strings"

// luceneSpecials are the characters the fulltext query parser treats as
// operators. User search terms are plain text, so every occurrence gets
// escaped before the term is handed to the index.
const luceneSpecials = `+-!(){}[]^"~*?:\/|&`

// SanitizeFulltextQuery prepares a user-supplied search term for a Lucene
// fulltext index lookup: invalid UTF-8 and NUL bytes are stripped and query
// operators are escaped so the term is matched literally.
func SanitizeFulltextQuery(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	sanitized = strings.ReplaceAll(sanitized, "\x00", "")

	var b strings.Builder
	b.Grow(len(sanitized))
	for _, r := range sanitized {
		if strings.ContainsRune(luceneSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
