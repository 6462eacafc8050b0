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

type TestimonialHandler struct {
	Service *services.TestimonialService
}

func (h *TestimonialHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Service.GetTestimonials(r.Context())
	if err != nil {
		log.Printf("GetTestimonials error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(testimonials)
}

func (h *TestimonialHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.CreateTestimonial(r.Context(), testimonial)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "This email has already submitted a testimonial. One testimonial per email only.")
			return
		}
		log.Printf("CreateTestimonial error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

func (h *TestimonialHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	if err := h.Service.DeleteTestimonial(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrTestimonialNotFound) {
			writeError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		log.Printf("DeleteTestimonial error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}
