package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Reply is one scripted Stub outcome.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Stub is an offline Provider that plays back scripted replies in order
// and records every request. It is used by tests across the module.
type Stub struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

// NewStub returns a Stub that will answer with replies, in order.
func NewStub(replies ...Reply) *Stub {
	return &Stub{replies: replies}
}

// Generate pops the next reply. An exhausted script is a KindUnavailable
// error.
func (s *Stub) Generate(_ context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable}
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "stub", StopReason: StopEnd}, nil
}

func (s *Stub) ModelID() string { return "stub" }

// Push appends replies to the script.
func (s *Stub) Push(replies ...Reply) {
	s.mu.Lock()
	s.replies = append(s.replies, replies...)
	s.mu.Unlock()
}

// Requests returns a copy of the requests seen so far.
func (s *Stub) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}
