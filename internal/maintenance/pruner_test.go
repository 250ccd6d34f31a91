package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	before []time.Time
	n      int
	err    error
}

func (f *fakeEvents) PruneLLMEvents(_ context.Context, before time.Time) (int, error) {
	f.before = append(f.before, before)
	return f.n, f.err
}

func TestRunOnceUsesRetention(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	events := &fakeEvents{n: 3}
	p := NewPruner(events, 48*time.Hour, nil)
	p.now = func() time.Time { return now }

	n, err := p.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, events.before, 1)
	assert.Equal(t, now.Add(-48*time.Hour), events.before[0])
}

func TestRunOnceReportsErrors(t *testing.T) {
	events := &fakeEvents{err: errors.New("locked")}
	p := NewPruner(events, time.Hour, nil)

	_, err := p.RunOnce(context.Background())
	assert.EqualError(t, err, "locked")
}
