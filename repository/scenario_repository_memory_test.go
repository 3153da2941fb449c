package repository

import (
	"testing"

	"explore-options/domain"
)

func TestScenarioRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewScenarioRepositoryMemory(2)

	for _, id := range []domain.ScenarioID{domain.SameTenure, domain.SameEMI, domain.ExtraPayment} {
		if err := repo.Save(domain.ScenarioResult{Scenario: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := repo.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Scenario != domain.SameEMI || got[1].Scenario != domain.ExtraPayment {
		t.Errorf("expected [same-emi extra-payment], got [%s %s]", got[0].Scenario, got[1].Scenario)
	}
}

func TestScenarioRepositoryMemory_StoresCopies(t *testing.T) {
	repo := NewScenarioRepositoryMemory(5)

	res := domain.ScenarioResult{
		Scenario: domain.SameEMI,
		SameEMI:  &domain.SameEMIResult{NewTenure: 200},
	}
	repo.Save(res)
	res.SameEMI.NewTenure = 1

	if got := repo.List()[0].SameEMI.NewTenure; got != 200 {
		t.Errorf("stored result changed through caller pointer: %d", got)
	}

	listed := repo.List()
	listed[0].SameEMI.NewTenure = 2
	if got := repo.List()[0].SameEMI.NewTenure; got != 200 {
		t.Errorf("stored result changed through listed pointer: %d", got)
	}
}
