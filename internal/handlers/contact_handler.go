package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.GetContacts(r.Context())
	if err != nil {
		log.Printf("GetContacts error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contacts)
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.CreateContact(r.Context(), contact); err != nil {
		log.Printf("CreateContact error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}

func (h *ContactHandler) SetContactRead(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var req struct {
		IsRead bool `json:"isRead"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.SetContactRead(r.Context(), id, req.IsRead); err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		log.Printf("SetContactRead error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := h.Service.DeleteContact(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		log.Printf("DeleteContact error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}
