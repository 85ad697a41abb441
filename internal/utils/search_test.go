package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery_EmptyMatchesEverything(t *testing.T) {
	assert.True(t, MatchesQuery("", "anything"))
	assert.True(t, MatchesQuery(""))
}

func TestMatchesQuery_CaseInsensitive(t *testing.T) {
	assert.True(t, MatchesQuery("water", "Water plants", ""))
	assert.True(t, MatchesQuery("WATER", "water plants", ""))
	assert.False(t, MatchesQuery("fire", "Water plants", ""))
}

func TestMatchesQuery_AnyField(t *testing.T) {
	assert.True(t, MatchesQuery("urgent", "Water plants", "urgent, garden"))
}

// A longer query can only ever match a subset of what its prefixes match.
func TestMatchesQuery_MonotonicUnderExtension(t *testing.T) {
	fields := []string{"Water plants", "garden chores"}

	query := "garden ch"
	for i := 1; i <= len(query); i++ {
		if MatchesQuery(query[:i], fields...) {
			continue
		}
		// Once a prefix fails, every extension must fail too.
		for j := i; j <= len(query); j++ {
			assert.False(t, MatchesQuery(query[:j], fields...))
		}
		break
	}
}
