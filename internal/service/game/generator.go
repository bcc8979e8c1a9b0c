package game

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"slices"
	"sync"

	"mines_backend/internal/model"
)

// Generator раскладывает мины по полю. Безопасен для конкурентного использования
type Generator struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

// NewGenerator - детерминированный генератор для тестов
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSecureGenerator - генератор с сидом из crypto/rand
func NewSecureGenerator() (*Generator, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seed round generator: %w", err)
	}

	src := mrand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
	return &Generator{rnd: mrand.New(src)}, nil
}

// GenerateRound возвращает hazardCount различных индексов из [0, boardSize) по возрастанию
func (g *Generator) GenerateRound(boardSize, hazardCount int) ([]int, error) {
	if boardSize <= 0 || hazardCount < 0 || hazardCount > boardSize {
		return nil, fmt.Errorf("%w: board %d, hazards %d", model.ErrInvalidParameters, boardSize, hazardCount)
	}

	cells := make([]int, boardSize)
	for i := range cells {
		cells[i] = i
	}

	// Частичная перетасовка Фишера-Йетса: первые hazardCount ячеек - мины
	g.mu.Lock()
	for i := 0; i < hazardCount; i++ {
		j := i + g.rnd.IntN(boardSize-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
	g.mu.Unlock()

	hazards := cells[:hazardCount:hazardCount]
	slices.Sort(hazards)
	return hazards, nil
}
