package repository

import "explore-options/domain"

// ScenarioRepository records scenario results as they are produced.
type ScenarioRepository interface {
	Save(result domain.ScenarioResult) error
	List() []domain.ScenarioResult
}
