package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("SignIn error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if _, err := h.Service.RegisterAdmin(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Printf("RegisterAdmin error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}
