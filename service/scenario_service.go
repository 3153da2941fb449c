package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"explore-options/domain"
	"explore-options/repository"
)

const cacheKeyPrefix = "scenario:"

// ScenarioService evaluates one scenario from a self-contained request.
type ScenarioService struct {
	repo  repository.ScenarioRepository
	cache repository.CacheRepository
}

// NewScenarioService creates a ScenarioService that records results in repo
// and memoizes them in cache.
func NewScenarioService(repo repository.ScenarioRepository,
	cache repository.CacheRepository,
) *ScenarioService {
	return &ScenarioService{repo: repo, cache: cache}
}

// Evaluate validates input, fills in default controls and returns the
// scenario result. Identical requests are served from the cache.
func (s *ScenarioService) Evaluate(
	ctx context.Context,
	input domain.EvaluateInput,
) (domain.ScenarioResult, error) {

	input, err := normalizeEvaluateInput(input)
	if err != nil {
		return domain.ScenarioResult{}, err
	}

	key, err := cacheKey(input)
	if err != nil {
		return domain.ScenarioResult{}, err
	}
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.ScenarioResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	result, err := evaluate(input)
	if err != nil {
		return domain.ScenarioResult{}, err
	}

	// Cache e historial no son críticos
	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			log.Printf("Warning: failed to cache scenario result: %v", err)
		}
	}
	if err := s.repo.Save(result); err != nil {
		log.Printf("Warning: failed to save scenario result: %v", err)
	}

	return result, nil
}

func normalizeEvaluateInput(input domain.EvaluateInput) (domain.EvaluateInput, error) {
	if input.Scenario == "" {
		input.Scenario = domain.SameTenure
	}
	if _, err := domain.ParseScenarioID(string(input.Scenario)); err != nil {
		return input, err
	}
	if input.Frequency == "" {
		input.Frequency = domain.Monthly
	}
	if _, err := domain.ParseFrequency(string(input.Frequency)); err != nil {
		return input, err
	}
	if input.ComparisonMode == "" {
		input.ComparisonMode = domain.CompareRefinanced
	}
	if _, err := domain.ParseComparisonMode(string(input.ComparisonMode)); err != nil {
		return input, err
	}
	if !finite(input.ChosenEMI) || input.ChosenEMI < 0 {
		return input, errors.New("invalid EMI")
	}
	if input.ChosenEMI == 0 {
		input.ChosenEMI = input.Loan.CurrentEMI
	}
	if !finite(input.ExtraPayment) || input.ExtraPayment < 0 {
		return input, errors.New("invalid extra payment")
	}

	// Controls a scenario does not read must not split the cache.
	if input.Scenario != domain.SameEMI {
		input.ChosenEMI = 0
	}
	if input.Scenario != domain.ExtraPayment {
		input.ExtraPayment = 0
		input.Frequency = domain.Monthly
		input.ComparisonMode = domain.CompareRefinanced
	}
	return input, nil
}

func evaluate(input domain.EvaluateInput) (domain.ScenarioResult, error) {
	c := NewCoordinator(nil)
	if err := c.Initialize(input.Loan); err != nil {
		return domain.ScenarioResult{}, err
	}

	switch input.Scenario {
	case domain.SameEMI:
		c.SetSameEMIInput(input.ChosenEMI)
	case domain.ExtraPayment:
		if _, err := c.SetExtraPaymentInput(input.ExtraPayment, input.Frequency); err != nil {
			return domain.ScenarioResult{}, err
		}
		if _, err := c.SetComparisonMode(input.ComparisonMode); err != nil {
			return domain.ScenarioResult{}, err
		}
	}
	return c.SelectScenario(input.Scenario)
}

func cacheKey(input domain.EvaluateInput) (string, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
