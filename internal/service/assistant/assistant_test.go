package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quillhq/quill/internal/core"
	"github.com/quillhq/quill/internal/service/dialog"
	"github.com/quillhq/quill/internal/service/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mainModel = "text-davinci-003"
	sumModel  = "text-curie-001"
	clsModel  = "classifier-model"
	rateModel = "rater-model"
)

type stubClient struct {
	mainPrompts []string
	err         error
	sumErr      error
}

func (s *stubClient) Complete(ctx context.Context, req core.CompletionRequest) (core.Completion, error) {
	switch req.Model {
	case clsModel:
		return core.Completion{Text: "2"}, nil
	case rateModel:
		return core.Completion{Text: "8"}, nil
	case sumModel:
		if s.sumErr != nil {
			return core.Completion{}, s.sumErr
		}
		return core.Completion{Text: "a past question about monads. "}, nil
	default:
		if s.err != nil {
			return core.Completion{}, s.err
		}
		s.mainPrompts = append(s.mainPrompts, req.Prompt)
		return core.Completion{ID: "cmpl-1", Text: "the answer", FinishReason: "stop", TotalTokens: 42}, nil
	}
}

type stubEmbedder struct {
	calls []string
	err   error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.calls = append(s.calls, text)
	return []float32{1, 0}, nil
}

type stubRepo struct {
	records  []core.HistoryRecord
	inserted []core.HistoryRecord
	getErr   error
}

func (s *stubRepo) Insert(ctx context.Context, rec core.HistoryRecord) error {
	s.inserted = append(s.inserted, rec)
	return nil
}

func (s *stubRepo) GetAll(ctx context.Context) ([]core.HistoryRecord, error) {
	return s.records, s.getErr
}

func (s *stubRepo) GetRecent(ctx context.Context, limit int) ([]core.HistoryRecord, error) {
	return s.records, s.getErr
}

func newFixture(client *stubClient, embedder *stubEmbedder, repo *stubRepo) *Assistant {
	return New(
		client,
		embedder,
		repo,
		memory.NewRetriever(repo),
		memory.NewSynthesizer(client, sumModel, false),
		memory.NewRater(client, rateModel),
		dialog.NewLoop(client, noInput{}, clsModel),
	)
}

type noInput struct{}

func (noInput) ReadLine(prompt string) (string, error) {
	return "", errors.New("no operator available")
}

func opts() Options {
	return Options{Model: mainModel, Temperature: 0.9, MaxTokens: 1000}
}

func TestAsk_AnswersWithBackgroundAndPersists(t *testing.T) {
	client := &stubClient{}
	embedder := &stubEmbedder{}
	repo := &stubRepo{records: []core.HistoryRecord{
		{ID: "old", Prompt: "what is a monad?", Importance: 8, Embedding: []float32{1, 0}, CreatedAt: time.Now()},
	}}
	a := newFixture(client, embedder, repo)

	reply, err := a.Ask(context.Background(), "and what is a functor?", opts())
	require.NoError(t, err)
	assert.Equal(t, "the answer", reply.Text)

	// main prompt carries the preamble, then the synthesized background,
	// then the question
	require.Len(t, client.mainPrompts, 1)
	assert.True(t, strings.HasPrefix(client.mainPrompts[0], memory.BackgroundPreamble+memory.BackgroundHeader))
	assert.Contains(t, client.mainPrompts[0], "a past question about monads. ")
	assert.Contains(t, client.mainPrompts[0], "and what is a functor?")

	require.Len(t, repo.inserted, 1)
	rec := repo.inserted[0]
	assert.Equal(t, "cmpl-1", rec.ID)
	assert.Equal(t, 8, rec.Importance)
	assert.Equal(t, 42, rec.Tokens)
	assert.Equal(t, mainModel, rec.Model)
	assert.Equal(t, "the answer", rec.Response)
	assert.Equal(t, []float32{1, 0}, rec.Embedding)

	// the stored prompt and its embedding reflect the final constructed text
	assert.True(t, strings.HasPrefix(rec.Prompt, memory.BackgroundPreamble))
	assert.Equal(t, rec.Prompt, embedder.calls[len(embedder.calls)-1])
}

// A completion failure during background synthesis is not recoverable: the
// invocation aborts before the main model is called and nothing is stored.
func TestAsk_SynthesisFailureAborts(t *testing.T) {
	client := &stubClient{sumErr: core.ErrRateLimited}
	embedder := &stubEmbedder{}
	repo := &stubRepo{records: []core.HistoryRecord{
		{ID: "old", Prompt: "what is a monad?", Importance: 8, Embedding: []float32{1, 0}, CreatedAt: time.Now()},
	}}
	a := newFixture(client, embedder, repo)

	_, err := a.Ask(context.Background(), "and what is a functor?", opts())
	require.ErrorIs(t, err, core.ErrRateLimited)

	assert.Empty(t, client.mainPrompts, "main model must not be called after an aborted synthesis")
	assert.Empty(t, repo.inserted, "no partial record for an aborted run")
}

func TestAsk_NoMemorySkipsStore(t *testing.T) {
	client := &stubClient{}
	embedder := &stubEmbedder{}
	repo := &stubRepo{getErr: errors.New("must not be touched")}
	a := newFixture(client, embedder, repo)

	options := opts()
	options.NoMemory = true

	reply, err := a.Ask(context.Background(), "quick question", options)
	require.NoError(t, err)
	assert.Equal(t, "the answer", reply.Text)

	assert.Empty(t, embedder.calls)
	assert.Empty(t, repo.inserted)
	require.Len(t, client.mainPrompts, 1)
	assert.True(t, strings.HasPrefix(client.mainPrompts[0], "quick question"))
}

func TestAsk_StoreFailureStillAnswers(t *testing.T) {
	client := &stubClient{}
	embedder := &stubEmbedder{}
	repo := &stubRepo{getErr: errors.New("db is locked")}
	a := newFixture(client, embedder, repo)

	reply, err := a.Ask(context.Background(), "what is a monad?", opts())
	require.NoError(t, err)
	assert.Equal(t, "the answer", reply.Text)

	require.Len(t, client.mainPrompts, 1)
	assert.NotContains(t, client.mainPrompts[0], memory.BackgroundHeader)
	assert.NotContains(t, client.mainPrompts[0], memory.BackgroundPreamble)
	assert.Empty(t, repo.inserted, "nothing should be stored when the store already failed")
}

func TestAsk_EmbedFailureDowngrades(t *testing.T) {
	client := &stubClient{}
	embedder := &stubEmbedder{err: errors.New("embedding service down")}
	repo := &stubRepo{}
	a := newFixture(client, embedder, repo)

	reply, err := a.Ask(context.Background(), "what is a monad?", opts())
	require.NoError(t, err)
	assert.Equal(t, "the answer", reply.Text)
	assert.Empty(t, repo.inserted)
}

func TestAsk_CompletionFailureAborts(t *testing.T) {
	boom := errors.New("rate limited")
	client := &stubClient{err: boom}
	embedder := &stubEmbedder{}
	repo := &stubRepo{}
	a := newFixture(client, embedder, repo)

	_, err := a.Ask(context.Background(), "what is a monad?", opts())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, repo.inserted, "no partial record for an aborted run")
}
