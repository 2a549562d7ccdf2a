package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/cli/config"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
	"github.com/urfave/cli/v3"
)

// cmdExtract runs the extractor locally without the HTTP surface: one
// item per output line, read from a file or stdin.
func cmdExtract() *cli.Command {
	var input string
	var useLLM bool
	var llmTimeout time.Duration
	var geminiCfg config.Gemini
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Input file path ('-' for stdin)",
			Value:       "-",
			Destination: &input,
		},
		&cli.BoolFlag{
			Name:        "llm",
			Usage:       "Use the LLM extraction tier (falls back to heuristics on failure)",
			Destination: &useLLM,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout for a single LLM extraction call",
			Value:       30 * time.Second,
			Destination: &llmTimeout,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   "Extract action items from a file or stdin",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			text, err := readInput(input)
			if err != nil {
				return err
			}

			ruleset, err := rulesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load extraction ruleset")
			}
			heuristic := extract.NewHeuristic(ruleset)

			var items []string
			if useLLM {
				llmClient, err := geminiCfg.Configure(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize Gemini client")
				}

				tiers := []extract.Strategy{}
				if llmClient != nil {
					tiers = append(tiers, extract.NewLLM(llmClient, extract.WithTimeout(llmTimeout)))
				}
				tiers = append(tiers, extract.HeuristicStrategy(heuristic), extract.LineSplit{})

				items = extract.NewChain(tiers...).Extract(ctx, text)
			} else {
				items = heuristic.Extract(text)
			}

			for _, item := range items {
				fmt.Println(item)
			}
			return nil
		},
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}
	return string(data), nil
}
