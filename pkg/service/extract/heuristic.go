package extract

import (
	"strings"
	"unicode"
)

// checkboxTokens are the unchecked-box markers, matched case-insensitively
var checkboxTokens = []string{"[ ]", "[todo]"}

// bulletGlyphs mark unordered list lines
var bulletGlyphs = []string{"-", "*", "•"}

// Heuristic is the rule-based extractor. It is pure and safe for
// concurrent use: Extract never fails and holds no state between calls.
type Heuristic struct {
	keywordPrefixes []string
	verbs           map[string]struct{}
}

// NewHeuristic compiles a ruleset into an extractor. The ruleset is
// assumed valid; use Ruleset.Validate before handing it over.
func NewHeuristic(rules *Ruleset) *Heuristic {
	verbs := make(map[string]struct{}, len(rules.ImperativeVerbs))
	for _, verb := range rules.ImperativeVerbs {
		verbs[strings.ToLower(verb)] = struct{}{}
	}

	prefixes := make([]string, len(rules.KeywordPrefixes))
	for i, prefix := range rules.KeywordPrefixes {
		prefixes[i] = strings.ToLower(prefix)
	}

	return &Heuristic{
		keywordPrefixes: prefixes,
		verbs:           verbs,
	}
}

// Extract converts free text into an ordered list of action item texts.
// Each line contributes at most one item, via the first matching rule:
// checkbox marker, bullet marker, keyword prefix, imperative first word.
// A matched line whose text is empty after marker stripping contributes
// nothing. The result contains only non-empty trimmed strings, in source
// line order.
func (h *Heuristic) Extract(text string) []string {
	items := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if item, ok := h.matchLine(line); ok && item != "" {
			items = append(items, item)
		}
	}
	return items
}

// matchLine applies the extraction rules in precedence order. ok reports
// whether any rule consumed the line; the returned item may still be
// empty for a consumed line with no remaining text.
func (h *Heuristic) matchLine(line string) (string, bool) {
	// Checkbox marker, with an optional leading bullet glyph. A line like
	// "- [ ] Buy milk" sheds both markers here.
	candidate := line
	if rest, ok := stripListMarker(candidate); ok {
		candidate = strings.TrimSpace(rest)
	}
	if rest, ok := stripCheckboxToken(candidate); ok {
		return strings.TrimSpace(rest), true
	}

	// Bullet or numbered-list marker
	if rest, ok := stripListMarker(line); ok {
		item := strings.TrimSpace(rest)
		if cb, ok := stripCheckboxToken(item); ok {
			item = strings.TrimSpace(cb)
		}
		return item, true
	}

	// Keyword prefix
	lower := strings.ToLower(line)
	for _, prefix := range h.keywordPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}

	// Imperative fallback: only the first word is inspected
	if _, ok := h.verbs[firstWord(line)]; ok {
		return line, true
	}

	return "", false
}

// stripCheckboxToken removes a leading unchecked-box token, matched
// case-insensitively.
func stripCheckboxToken(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, token := range checkboxTokens {
		if strings.HasPrefix(lower, token) {
			return s[len(token):], true
		}
	}
	return s, false
}

// stripListMarker removes a leading bullet glyph or numbered-list prefix
// ("1." or "2)" style).
func stripListMarker(s string) (string, bool) {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(s, glyph) {
			return s[len(glyph):], true
		}
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		return s[digits+1:], true
	}

	return s, false
}

// firstWord returns the leading run of letters and apostrophes of the
// line, lowercased. Trailing punctuation on the word is ignored so
// "Fix: the build" still matches the verb "fix".
func firstWord(s string) string {
	end := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '\'' {
			break
		}
		end += len(string(r))
	}
	return strings.ToLower(s[:end])
}
