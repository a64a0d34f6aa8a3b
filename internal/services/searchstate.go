package services

import (
	"sync"

	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

// SearchTracker keeps the latest search result per client. Clients tag
// each search with a monotonically increasing sequence number; a result
// arriving with a sequence lower than the stored one is discarded, so
// slow responses never clobber the result of a newer search.
type SearchTracker struct {
	mu     sync.Mutex
	states map[string]*searchState
}

type searchState struct {
	seq    uint64
	result *dto.SearchResult
}

func NewSearchTracker() *SearchTracker {
	return &SearchTracker{states: make(map[string]*searchState)}
}

// Apply records the result for the client if it is at least as new as
// the stored one, and returns the now-current result along with whether
// the incoming result won.
func (t *SearchTracker) Apply(clientKey string, seq uint64, result *dto.SearchResult) (*dto.SearchResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	result.Seq = seq
	state, ok := t.states[clientKey]
	if !ok {
		t.states[clientKey] = &searchState{seq: seq, result: result}
		return result, true
	}
	if seq < state.seq {
		return state.result, false
	}
	state.seq = seq
	state.result = result
	return result, true
}

// NextSeq hands out the next sequence number for clients that do not
// track their own. The result is always newer than the stored state.
func (t *SearchTracker) NextSeq(clientKey string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state, ok := t.states[clientKey]; ok {
		return state.seq + 1
	}
	return 1
}

// Current returns the stored result for the client, if any.
func (t *SearchTracker) Current(clientKey string) (*dto.SearchResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.states[clientKey]
	if !ok {
		return nil, false
	}
	return state.result, true
}

// Clear drops the stored state for the client.
func (t *SearchTracker) Clear(clientKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, clientKey)
}
