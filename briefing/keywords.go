package briefing

import (
	"strings"
	"unicode"
)

// stopwords are common English function words plus meeting-domain noise
// words that carry no topical signal in a subject line.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "for": {},
	"with": {}, "from": {}, "was": {}, "are": {}, "were": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"shall": {}, "can": {}, "need": {},
	"meeting": {}, "call": {}, "sync": {}, "discussion": {}, "discuss": {},
	"review": {}, "update": {}, "weekly": {}, "monthly": {}, "daily": {},
	"team": {}, "group": {}, "fwd": {},
}

const maxKeywords = 10

// ExtractKeywords pulls salient terms out of a free-text subject/body pair.
//
// The text is lowercased and tokenized into runs of three or more alphabetic
// characters; stopwords are dropped, duplicates removed preserving first
// occurrence, and the result truncated to ten terms. Identical input always
// yields an identical ordered output.
//
// Note: two-letter tokens ("re", "fw", "q3") never survive tokenization, so
// reply/forward prefixes are excluded by construction.
func ExtractKeywords(subject, body string) []string {
	text := strings.ToLower(subject + " " + body)

	var keywords []string
	seen := map[string]struct{}{}

	var token strings.Builder
	flush := func() {
		if token.Len() < 3 {
			token.Reset()
			return
		}
		word := token.String()
		token.Reset()
		if _, stop := stopwords[word]; stop {
			return
		}
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			token.WriteRune(r)
			continue
		}
		if unicode.IsLetter(r) {
			// Non-ASCII letters break the token the same way digits do; the
			// corpus is English-language subject lines.
			flush()
			continue
		}
		flush()
	}
	flush()

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
