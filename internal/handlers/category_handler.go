package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kelly670/ROLLEROSE/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Service.GetCategories()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}
