package extract

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Ruleset holds the configurable parts of the heuristic extractor: the
// keyword prefixes that mark a line as an action item and the imperative
// verbs that trigger the first-word fallback. Bullet glyphs and checkbox
// tokens are fixed markdown conventions and are not configurable.
type Ruleset struct {
	KeywordPrefixes []string `toml:"keyword_prefixes"`
	ImperativeVerbs []string `toml:"imperative_verbs"`
}

// DefaultRuleset returns the built-in extraction rules
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		KeywordPrefixes: []string{
			"todo:",
			"action:",
			"next:",
		},
		ImperativeVerbs: []string{
			"add",
			"check",
			"create",
			"design",
			"document",
			"fix",
			"implement",
			"investigate",
			"refactor",
			"remove",
			"review",
			"schedule",
			"send",
			"update",
			"verify",
			"write",
		},
	}
}

// Validate checks if the ruleset is usable
func (r *Ruleset) Validate() error {
	if len(r.KeywordPrefixes) == 0 {
		return goerr.New("at least one keyword prefix is required")
	}
	for _, prefix := range r.KeywordPrefixes {
		if strings.TrimSpace(prefix) == "" {
			return goerr.New("keyword prefix must not be blank")
		}
		if !strings.HasSuffix(prefix, ":") {
			return goerr.New("keyword prefix must end with a colon", goerr.V("prefix", prefix))
		}
	}

	if len(r.ImperativeVerbs) == 0 {
		return goerr.New("at least one imperative verb is required")
	}
	for _, verb := range r.ImperativeVerbs {
		if strings.TrimSpace(verb) == "" {
			return goerr.New("imperative verb must not be blank")
		}
		if strings.ContainsAny(verb, " \t") {
			return goerr.New("imperative verb must be a single word", goerr.V("verb", verb))
		}
	}

	return nil
}
