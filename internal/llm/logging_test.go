package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, store.ErrNotFound
}

func (f *fakeEventRepo) PruneLLMEvents(context.Context, time.Time) (int, error) {
	return 0, nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	stub := NewStub(Reply{
		Content: json.RawMessage(`{"note":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(stub, "openai", repo, logger.Discard())

	ctx := WithPurpose(context.Background(), "coach-note")
	_, err := p.Generate(ctx, Request{System: "be kind", Prompt: "score 9/10", Schema: noteSchema()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "openai" || ev.Model != "stub" || ev.Purpose != "coach-note" || !ev.Success {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	for _, want := range []string{"[system]\nbe kind", "[user]\nscore 9/10", "[schema test-note]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
	if ev.ResponseBody != `{"note":"ok"}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	stub := NewStub(Reply{Err: &Error{Kind: KindInvalid, Content: json.RawMessage(`{"nope":1}`)}})
	var logged bytes.Buffer
	log := logger.New(logger.Options{Level: logger.LevelTest, Out: &logged, Err: &logged})
	p := WithLogging(stub, "gemini", repo, log)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if k, _ := KindOf(err); k != KindInvalid {
		t.Fatalf("provider error not passed through: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("events = %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success || ev.ErrorMessage == "" || ev.Purpose != "unlabelled" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.ResponseBody != `{"nope":1}` {
		t.Errorf("rejected reply not kept: %q", ev.ResponseBody)
	}
	if !strings.Contains(logged.String(), "LLM event not recorded") || !strings.Contains(logged.String(), "disk full") {
		t.Errorf("recording failure not logged to the injected logger: %q", logged.String())
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Errorf("model = %q", p.ModelID())
	}
}
