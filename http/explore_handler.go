package http

import (
	"net/http"
	"sync"

	"explore-options/domain"
	"explore-options/repository"
	"explore-options/service"
)

// ExploreHandler exposes one shared coordinator. The coordinator is
// single-threaded, so every request holds mu for its whole calculation.
type ExploreHandler struct {
	mu          sync.Mutex
	coordinator *service.Coordinator
	history     repository.ScenarioRepository
}

func NewExploreHandler(coordinator *service.Coordinator, history repository.ScenarioRepository) *ExploreHandler {
	return &ExploreHandler{coordinator: coordinator, history: history}
}

type selectScenarioRequest struct {
	Scenario string `json:"scenario"`
}

type sameEMIRequest struct {
	EMI float64 `json:"emi"`
}

type extraPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

type comparisonRequest struct {
	Mode string `json:"mode"`
}

// Scenario returns the current result on GET and switches scenario on POST.
func (h *ExploreHandler) Scenario(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.mu.Lock()
		result := h.coordinator.CurrentScenario()
		h.mu.Unlock()
		writeJSON(w, result)

	case http.MethodPost:
		var req selectScenarioRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		id, err := domain.ParseScenarioID(req.Scenario)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.mu.Lock()
		result, err := h.coordinator.SelectScenario(id)
		h.mu.Unlock()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, result)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ExploreHandler) SameEMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req sameEMIRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.mu.Lock()
	result := h.coordinator.SetSameEMIInput(req.EMI)
	h.mu.Unlock()
	writeJSON(w, result)
}

func (h *ExploreHandler) ExtraPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := extraPaymentRequest{Frequency: string(domain.Monthly)}
	if !decodeJSON(w, r, &req) {
		return
	}
	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	result, err := h.coordinator.SetExtraPaymentInput(req.Amount, frequency)
	h.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *ExploreHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req comparisonRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	mode, err := domain.ParseComparisonMode(req.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	result, err := h.coordinator.SetComparisonMode(mode)
	h.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

// Loan merges a partial loan update and returns the active scenario.
func (h *ExploreHandler) Loan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var update domain.LoanUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	h.mu.Lock()
	result, err := h.coordinator.UpdateLoanData(update)
	h.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

func (h *ExploreHandler) Controls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	controls := h.coordinator.Controls()
	h.mu.Unlock()
	writeJSON(w, controls)
}

func (h *ExploreHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.history.List())
}

// Register mounts the explore and evaluate endpoints on mux behind the
// rate limiter.
func Register(mux *http.ServeMux, limiter *RateLimiter, explore *ExploreHandler, evaluate *EvaluateHandler) {
	routes := map[string]http.HandlerFunc{
		"/explore/scenario":      explore.Scenario,
		"/explore/same-emi":      explore.SameEMI,
		"/explore/extra-payment": explore.ExtraPayment,
		"/explore/comparison":    explore.Comparison,
		"/explore/loan":          explore.Loan,
		"/explore/controls":      explore.Controls,
		"/explore/history":       explore.History,
		"/scenario/evaluate":     evaluate.Evaluate,
	}
	for pattern, handler := range routes {
		mux.Handle(pattern, RateLimitMiddleware(limiter, handler))
	}
}
