package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
	"github.com/secmon-lab/taskmine/pkg/utils/logging"
)

// ExtractMode selects the extraction pipeline
type ExtractMode string

const (
	ModeHeuristic ExtractMode = "heuristic"
	ModeLLM       ExtractMode = "llm"
)

// ExtractResult is the outcome of one extraction run
type ExtractResult struct {
	NoteID *types.NoteID
	Items  []*model.ActionItem
}

// ExtractUseCase runs the extraction pipelines and persists their output
type ExtractUseCase struct {
	repo      interfaces.Repository
	heuristic *extract.Heuristic
	llmChain  *extract.Chain
}

// NewExtractUseCase builds the use case. llm may be nil; the LLM pipeline
// then starts at the heuristic tier so the operation stays available.
func NewExtractUseCase(repo interfaces.Repository, heuristic *extract.Heuristic, llm *extract.LLM) *ExtractUseCase {
	tiers := []extract.Strategy{}
	if llm != nil {
		tiers = append(tiers, llm)
	}
	tiers = append(tiers, extract.HeuristicStrategy(heuristic), extract.LineSplit{})

	return &ExtractUseCase{
		repo:      repo,
		heuristic: heuristic,
		llmChain:  extract.NewChain(tiers...),
	}
}

// Extract converts text into action items and persists them. When
// saveNote is true the source text is stored first and the items
// reference it; if the item insert fails afterwards, the note stays
// persisted without items.
func (uc *ExtractUseCase) Extract(ctx context.Context, text string, saveNote bool, mode ExtractMode) (*ExtractResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrEmptyText, "failed to extract action items")
	}

	extractionID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx).With("extraction_id", extractionID, "mode", string(mode))
	ctx = logging.With(ctx, logger)

	var texts []string
	switch mode {
	case ModeLLM:
		texts = uc.llmChain.Extract(ctx, text)
	default:
		texts = uc.heuristic.Extract(text)
	}

	var noteID *types.NoteID
	if saveNote {
		note, err := uc.repo.Note().Create(ctx, &model.Note{Content: text})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to save note")
		}
		noteID = &note.ID
	}

	items := make([]*model.ActionItem, len(texts))
	for i, t := range texts {
		items[i] = &model.ActionItem{
			NoteID: noteID,
			Text:   t,
		}
	}

	created, err := uc.repo.ActionItem().CreateMany(ctx, items)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save action items")
	}

	logger.Info("extracted action items", "count", len(created), "saved_note", saveNote)

	return &ExtractResult{
		NoteID: noteID,
		Items:  created,
	}, nil
}
