package normalize

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// stopWords are filler words that add nothing to full-text lookup. The set
// covers Dutch and English since the listings mix both.
var stopWords = map[string]struct{}{
	"de": {}, "het": {}, "een": {}, "van": {}, "en": {}, "in": {},
	"op": {}, "met": {}, "voor": {}, "the": {}, "and": {}, "or": {}, "of": {},
}

// SearchTags builds the comma-joined lowercase token set used for full-text
// lookup from the product name and category. Tokens are de-duplicated in
// encounter order; the result is truncated at a token boundary so it never
// exceeds the column size.
func SearchTags(name, category string) string {
	seen := make(map[string]struct{})
	var tags []string

	for _, source := range []string{name, category} {
		for _, token := range tokenRe.FindAllString(strings.ToLower(source), -1) {
			if len(token) <= 2 {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tags = append(tags, token)
		}
	}

	joined := strings.Join(tags, ", ")
	if len(joined) > maxSearchTagsLen {
		if cut := strings.LastIndex(joined[:maxSearchTagsLen], ", "); cut >= 0 {
			return joined[:cut]
		}
		return joined[:maxSearchTagsLen]
	}
	return joined
}
