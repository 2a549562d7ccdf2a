package usecase

import (
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
)

type UseCases struct {
	repo      interfaces.Repository
	heuristic *extract.Heuristic
	llm       *extract.LLM

	Note       *NoteUseCase
	ActionItem *ActionItemUseCase
	Extract    *ExtractUseCase
}

type Option func(*UseCases)

// WithHeuristic replaces the default ruleset extractor
func WithHeuristic(h *extract.Heuristic) Option {
	return func(uc *UseCases) {
		uc.heuristic = h
	}
}

// WithLLM enables the LLM extraction tier. Without it the extract-llm
// operation degrades to the heuristic chain.
func WithLLM(llm *extract.LLM) Option {
	return func(uc *UseCases) {
		uc.llm = llm
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		heuristic: extract.NewHeuristic(extract.DefaultRuleset()),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Note = NewNoteUseCase(repo)
	uc.ActionItem = NewActionItemUseCase(repo)
	uc.Extract = NewExtractUseCase(repo, uc.heuristic, uc.llm)

	return uc
}
