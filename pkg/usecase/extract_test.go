package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/taskmine/pkg/repository/memory"
	"github.com/secmon-lab/taskmine/pkg/service/extract"
	"github.com/secmon-lab/taskmine/pkg/usecase"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{
		Texts: []string{`{"action_items": []}`},
	}, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func llmRespondingWith(text string) *mockLLMClient {
	return &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{text}}, nil
				},
			}, nil
		},
	}
}

func TestExtractUseCase_Heuristic(t *testing.T) {
	ctx := context.Background()

	t.Run("extract without saving the note", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		result, err := uc.Extract.Extract(ctx, "- [ ] Buy milk\n- [ ] Call Bob", false, usecase.ModeHeuristic)
		gt.NoError(t, err).Required()

		gt.Value(t, result.NoteID).Nil()
		gt.Array(t, result.Items).Length(2).Required()
		gt.Value(t, result.Items[0].Text).Equal("Buy milk")
		gt.Value(t, result.Items[1].Text).Equal("Call Bob")
		gt.Value(t, result.Items[0].NoteID).Nil()

		notes, err := repo.Note().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, notes).Length(0)
	})

	t.Run("extract and save the note", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		result, err := uc.Extract.Extract(ctx, "TODO: write report", true, usecase.ModeHeuristic)
		gt.NoError(t, err).Required()

		gt.Value(t, result.NoteID).NotNil()
		gt.Array(t, result.Items).Length(1).Required()
		gt.Value(t, *result.Items[0].NoteID).Equal(*result.NoteID)

		note, err := repo.Note().Get(ctx, *result.NoteID)
		gt.NoError(t, err).Required()
		gt.Value(t, note.Content).Equal("TODO: write report")
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Extract.Extract(ctx, "   \n ", false, usecase.ModeHeuristic)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, usecase.ErrEmptyText)).True()
	})

	t.Run("text with no matches yields empty result", func(t *testing.T) {
		uc := usecase.New(memory.New())

		result, err := uc.Extract.Extract(ctx, "Nothing actionable in this prose.", false, usecase.ModeHeuristic)
		gt.NoError(t, err).Required()
		gt.Array(t, result.Items).Length(0)
	})

	t.Run("note is saved even when no items match", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		result, err := uc.Extract.Extract(ctx, "Just some prose.", true, usecase.ModeHeuristic)
		gt.NoError(t, err).Required()

		gt.Value(t, result.NoteID).NotNil()
		gt.Array(t, result.Items).Length(0)

		_, err = repo.Note().Get(ctx, *result.NoteID)
		gt.NoError(t, err)
	})
}

func TestExtractUseCase_LLM(t *testing.T) {
	ctx := context.Background()

	t.Run("LLM tier produces the items", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLLM(
			extract.NewLLM(llmRespondingWith(`{"action_items": ["Review the contract"]}`)),
		))

		result, err := uc.Extract.Extract(ctx, "long meeting transcript", true, usecase.ModeLLM)
		gt.NoError(t, err).Required()

		gt.Array(t, result.Items).Length(1).Required()
		gt.Value(t, result.Items[0].Text).Equal("Review the contract")
	})

	t.Run("LLM failure falls back to heuristics", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, usecase.WithLLM(
			extract.NewLLM(llmRespondingWith(`{broken json`)),
		))

		result, err := uc.Extract.Extract(ctx, "- [ ] Buy milk", false, usecase.ModeLLM)
		gt.NoError(t, err).Required()

		gt.Array(t, result.Items).Length(1).Required()
		gt.Value(t, result.Items[0].Text).Equal("Buy milk")
	})

	t.Run("no LLM configured degrades to heuristics", func(t *testing.T) {
		uc := usecase.New(memory.New())

		result, err := uc.Extract.Extract(ctx, "- [ ] Buy milk", false, usecase.ModeLLM)
		gt.NoError(t, err).Required()

		gt.Array(t, result.Items).Length(1).Required()
		gt.Value(t, result.Items[0].Text).Equal("Buy milk")
	})

	t.Run("heuristic tier wins even with an empty result", func(t *testing.T) {
		uc := usecase.New(memory.New())

		// No checkbox, keyword or imperative verb on these lines. The
		// heuristic tier still succeeds, so line-split never runs.
		result, err := uc.Extract.Extract(ctx, "first thought\nsecond thought", false, usecase.ModeLLM)
		gt.NoError(t, err).Required()
		gt.Array(t, result.Items).Length(0)
	})
}
