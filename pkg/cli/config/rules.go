package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
	"github.com/secmon-lab/taskmine/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Rules holds the flag for the extraction ruleset file
type Rules struct {
	path string
}

// Flags returns CLI flags for ruleset configuration
func (r *Rules) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rules",
			Usage:       "Path to a TOML file overriding the extraction ruleset",
			Sources:     cli.EnvVars("TASKMINE_RULES"),
			Destination: &r.path,
		},
	}
}

// Configure returns the extraction ruleset: the built-in default when no
// file is configured, otherwise the validated file contents.
func (r *Rules) Configure() (*extract.Ruleset, error) {
	if r.path == "" {
		return extract.DefaultRuleset(), nil
	}

	ruleset, err := LoadRuleset(r.path)
	if err != nil {
		return nil, err
	}

	logging.Default().Info("Loaded extraction ruleset",
		"path", r.path,
		"keyword_prefixes", len(ruleset.KeywordPrefixes),
		"imperative_verbs", len(ruleset.ImperativeVerbs),
	)
	return ruleset, nil
}

// LoadRuleset reads and validates a TOML ruleset file
func LoadRuleset(path string) (*extract.Ruleset, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read ruleset file", goerr.V("path", path))
	}

	var ruleset extract.Ruleset
	if err := toml.Unmarshal(data, &ruleset); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML ruleset", goerr.V("path", path))
	}

	if err := ruleset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "ruleset validation failed", goerr.V("path", path))
	}

	return &ruleset, nil
}
