package http

import (
	"net/http"

	"explore-options/domain"
	"explore-options/service"
)

type EvaluateHandler struct {
	service *service.ScenarioService
}

func NewEvaluateHandler(service *service.ScenarioService) *EvaluateHandler {
	return &EvaluateHandler{service: service}
}

// Evaluate computes one scenario from a self-contained request.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.EvaluateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}
