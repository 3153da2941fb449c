package repository

import (
	"sync"

	"explore-options/domain"
)

// ScenarioRepositoryMemory keeps the most recent results in memory,
// dropping the oldest once capacity is reached.
type ScenarioRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.ScenarioResult
}

// NewScenarioRepositoryMemory creates a history holding up to capacity
// results. A capacity below 1 keeps one.
func NewScenarioRepositoryMemory(capacity int) *ScenarioRepositoryMemory {
	if capacity < 1 {
		capacity = 1
	}
	return &ScenarioRepositoryMemory{
		capacity: capacity,
		data:     []domain.ScenarioResult{},
	}
}

// Save stores a copy of the result.
func (r *ScenarioRepositoryMemory) Save(result domain.ScenarioResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		r.data = append(r.data[:0], r.data[1:]...)
	}
	r.data = append(r.data, result.Clone())
	return nil
}

// List returns the stored results, oldest first.
func (r *ScenarioRepositoryMemory) List() []domain.ScenarioResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ScenarioResult, len(r.data))
	for i, res := range r.data {
		out[i] = res.Clone()
	}
	return out
}
