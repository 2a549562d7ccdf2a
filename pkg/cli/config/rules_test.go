package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/taskmine/pkg/cli/config"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestRules_Configure(t *testing.T) {
	t.Run("returns default ruleset without a file", func(t *testing.T) {
		cfg := config.NewRulesForTest("")

		ruleset, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, ruleset).NotNil()
		gt.NoError(t, ruleset.Validate())
	})

	t.Run("loads ruleset from TOML file", func(t *testing.T) {
		path := writeRules(t, `
keyword_prefixes = ["todo:", "followup:"]
imperative_verbs = ["fix", "deploy"]
`)
		cfg := config.NewRulesForTest(path)

		ruleset, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Array(t, ruleset.KeywordPrefixes).Length(2)
		gt.Array(t, ruleset.ImperativeVerbs).Length(2)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewRulesForTest(filepath.Join(t.TempDir(), "missing.toml"))

		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := writeRules(t, `keyword_prefixes = [`)
		cfg := config.NewRulesForTest(path)

		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid ruleset contents", func(t *testing.T) {
		path := writeRules(t, `
keyword_prefixes = ["todo"]
imperative_verbs = ["fix"]
`)
		cfg := config.NewRulesForTest(path)

		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewRulesForTest("")
		gt.Value(t, len(cfg.Flags())).Equal(1)
	})
}

func TestGemini_Configure(t *testing.T) {
	t.Run("returns nil client when project ID is empty", func(t *testing.T) {
		cfg := config.NewGeminiForTest("", "us-central1")

		client, err := cfg.Configure(t.Context())
		gt.NoError(t, err)
		gt.Value(t, client).Nil()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewGeminiForTest("", "")
		gt.Value(t, len(cfg.Flags())).Equal(2)
	})
}
