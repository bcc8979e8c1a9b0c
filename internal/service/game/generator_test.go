package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mines_backend/internal/model"
)

func TestGenerateRound(t *testing.T) {
	gen := NewGenerator(1)

	for range 1000 {
		hazards, err := gen.GenerateRound(25, 5)
		require.NoError(t, err)
		require.Len(t, hazards, 5)

		seen := make(map[int]struct{}, len(hazards))
		for i, h := range hazards {
			assert.GreaterOrEqual(t, h, 0)
			assert.Less(t, h, 25)
			if i > 0 {
				assert.Less(t, hazards[i-1], h)
			}
			seen[h] = struct{}{}
		}
		assert.Len(t, seen, 5)
	}
}

func TestGenerateRoundEdges(t *testing.T) {
	gen := NewGenerator(2)

	hazards, err := gen.GenerateRound(25, 0)
	require.NoError(t, err)
	assert.Empty(t, hazards)

	hazards, err = gen.GenerateRound(25, 25)
	require.NoError(t, err)
	require.Len(t, hazards, 25)
	for i, h := range hazards {
		assert.Equal(t, i, h)
	}

	for _, tc := range []struct{ board, hazards int }{
		{25, 26},
		{25, -1},
		{0, 0},
		{-3, 1},
	} {
		_, err := gen.GenerateRound(tc.board, tc.hazards)
		assert.ErrorIs(t, err, model.ErrInvalidParameters)
	}
}

func TestGenerateRoundIsDeterministicForSeed(t *testing.T) {
	a, b := NewGenerator(42), NewGenerator(42)

	for range 20 {
		x, err := a.GenerateRound(25, 5)
		require.NoError(t, err)
		y, err := b.GenerateRound(25, 5)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestGenerateRoundUniformity(t *testing.T) {
	const rounds = 20000
	gen := NewGenerator(7)

	var counts [25]int
	for range rounds {
		hazards, err := gen.GenerateRound(25, 5)
		require.NoError(t, err)
		for _, h := range hazards {
			counts[h]++
		}
	}

	// Ожидаем rounds*5/25 попаданий на ячейку
	expected := float64(rounds) * 5 / 25
	for cell, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.1, "cell %d", cell)
	}
}

func TestGenerateRoundConcurrent(t *testing.T) {
	gen, err := NewSecureGenerator()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				hazards, err := gen.GenerateRound(25, 5)
				assert.NoError(t, err)
				assert.Len(t, hazards, 5)
			}
		}()
	}
	wg.Wait()
}
