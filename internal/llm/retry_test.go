package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var okReply = Reply{Content: json.RawMessage(`{"note":"ok","practise":[]}`)}

func TestRetry(t *testing.T) {
	down := Reply{Err: &Error{Kind: KindUnavailable, Err: errors.New("503")}}
	limited := Reply{Err: &Error{Kind: KindRateLimit, RetryAfter: time.Millisecond}}
	bad := Reply{Err: &Error{Kind: KindInvalid}}
	cut := Reply{Err: &Error{Kind: KindTruncated}}
	plain := Reply{Err: errors.New("connection reset")}

	tests := []struct {
		name      string
		script    []Reply
		attempts  int
		wantErr   bool
		wantCalls int
	}{
		{"first try", []Reply{okReply}, 3, false, 1},
		{"outage then ok", []Reply{down, okReply}, 3, false, 2},
		{"rate limit then ok", []Reply{limited, okReply}, 3, false, 2},
		{"untyped error retried", []Reply{plain, okReply}, 3, false, 2},
		{"gives up after max attempts", []Reply{down, down, down, okReply}, 3, true, 3},
		{"truncation not retried", []Reply{cut, okReply}, 3, true, 1},
		{"invalid retried once", []Reply{bad, okReply}, 3, false, 2},
		{"invalid twice gives up", []Reply{bad, bad, okReply}, 3, true, 2},
		{"zero attempts still calls once", []Reply{down}, 0, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := NewStub(tt.script...)
			_, err := WithRetry(stub, fastRetry(tt.attempts)).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got := len(stub.Requests()); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRetry_StopsOnCancel(t *testing.T) {
	stub := NewStub(Reply{Err: &Error{Kind: KindUnavailable}}, okReply)
	cfg := fastRetry(3)
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(stub, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := len(stub.Requests()); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 3}
	want := []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 900 * time.Millisecond, time.Second, time.Second}
	for n, w := range want {
		if got := cfg.delay(n); got != w {
			t.Errorf("delay(%d) = %s, want %s", n, got, w)
		}
	}
}

func TestRetry_WaitHonoursRetryAfter(t *testing.T) {
	r := &retrying{cfg: fastRetry(3), jitter: func() float64 { return 0.5 }}
	if got := r.wait(0, &Error{Kind: KindRateLimit, RetryAfter: 7 * time.Second}); got != 7*time.Second {
		t.Errorf("wait = %s, want 7s", got)
	}
	// 1ms + 20% of 0.5 = 1.1ms
	if got := r.wait(0, &Error{Kind: KindUnavailable}); got != 1100*time.Microsecond {
		t.Errorf("wait = %s, want 1.1ms", got)
	}
}
