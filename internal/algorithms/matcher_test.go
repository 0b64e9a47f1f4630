package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMatchScore_FullOverlap(t *testing.T) {
	score, matched := CalculateMatchScore(
		[]string{"go", "postgresql"},
		[]string{"go", "postgresql", "docker"},
	)
	assert.Equal(t, 100.0, score)
	assert.Equal(t, []string{"go", "postgresql"}, matched)
}

func TestCalculateMatchScore_PartialOverlap(t *testing.T) {
	score, matched := CalculateMatchScore(
		[]string{"go", "rust", "kafka", "redis"},
		[]string{"go", "kafka"},
	)
	assert.Equal(t, 50.0, score)
	assert.Equal(t, []string{"go", "kafka"}, matched)
}

func TestCalculateMatchScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	score, matched := CalculateMatchScore(
		[]string{"Go", "PostgreSQL"},
		[]string{" go ", "postgresql"},
	)
	assert.Equal(t, 100.0, score)
	assert.Len(t, matched, 2)
}

func TestCalculateMatchScore_NoOverlap(t *testing.T) {
	score, matched := CalculateMatchScore(
		[]string{"elixir"},
		[]string{"go", "python"},
	)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, matched)
}

func TestCalculateMatchScore_EmptyRequirements(t *testing.T) {
	score, matched := CalculateMatchScore(nil, []string{"go"})
	assert.Equal(t, 0.0, score)
	assert.Nil(t, matched)
}
