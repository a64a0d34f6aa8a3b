package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

func TestSearchTrackerLastSearchWins(t *testing.T) {
	tracker := NewSearchTracker()

	first := &dto.SearchResult{Total: 3}
	current, applied := tracker.Apply("user:1", 1, first)
	assert.True(t, applied)
	assert.Equal(t, first, current)

	second := &dto.SearchResult{Total: 1}
	current, applied = tracker.Apply("user:1", 2, second)
	assert.True(t, applied)
	assert.Equal(t, second, current)

	// A slow response from the first search arrives after the second
	// finished. It must not replace the newer result.
	stale := &dto.SearchResult{Total: 99}
	current, applied = tracker.Apply("user:1", 1, stale)
	assert.False(t, applied)
	assert.Equal(t, second, current)

	stored, ok := tracker.Current("user:1")
	assert.True(t, ok)
	assert.Equal(t, second, stored)
}

func TestSearchTrackerIsolatesClients(t *testing.T) {
	tracker := NewSearchTracker()

	tracker.Apply("user:1", 5, &dto.SearchResult{Total: 5})
	tracker.Apply("client:abc", 1, &dto.SearchResult{Total: 1})

	stored, ok := tracker.Current("client:abc")
	assert.True(t, ok)
	assert.Equal(t, 1, stored.Total)

	_, ok = tracker.Current("client:unknown")
	assert.False(t, ok)
}

func TestSearchTrackerNextSeq(t *testing.T) {
	tracker := NewSearchTracker()

	assert.Equal(t, uint64(1), tracker.NextSeq("user:1"))
	tracker.Apply("user:1", 4, &dto.SearchResult{})
	assert.Equal(t, uint64(5), tracker.NextSeq("user:1"))
}

func TestSearchTrackerClear(t *testing.T) {
	tracker := NewSearchTracker()
	tracker.Apply("user:1", 1, &dto.SearchResult{})
	tracker.Clear("user:1")

	_, ok := tracker.Current("user:1")
	assert.False(t, ok)
}
