package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
	"github.com/kelly670/ROLLEROSE/internal/services"
)

func newTestimonialHandler(t *testing.T) (*TestimonialHandler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &TestimonialHandler{
		Service: &services.TestimonialService{TestimonialRepo: &repositories.TestimonialRepository{DB: db}},
	}, mock
}

func TestCreateTestimonialEchoesRecord(t *testing.T) {
	h, mock := newTestimonialHandler(t)

	mock.ExpectExec("INSERT INTO testimonials").
		WithArgs("Jane", "jane@example.com", "Lovely shop", 5).
		WillReturnResult(sqlmock.NewResult(4, 1))

	body := strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Lovely shop","rating":5}`)
	rr := httptest.NewRecorder()
	h.CreateTestimonial(rr, httptest.NewRequest(http.MethodPost, "/api/testimonials", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var created models.Testimonial
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != 4 || created.Email != "jane@example.com" || created.Rating != 5 {
		t.Errorf("unexpected created testimonial: %+v", created)
	}
}

func TestCreateTestimonialDuplicateEmailResponse(t *testing.T) {
	h, mock := newTestimonialHandler(t)

	mock.ExpectExec("INSERT INTO testimonials").
		WithArgs("Jane", "jane@example.com", "Again", 4).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	body := strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Again","rating":4}`)
	rr := httptest.NewRecorder()
	h.CreateTestimonial(rr, httptest.NewRequest(http.MethodPost, "/api/testimonials", body))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "already submitted a testimonial") {
		t.Errorf("unexpected error body: %s", rr.Body.String())
	}
}

func TestDeleteTestimonialNotFoundResponse(t *testing.T) {
	h, mock := newTestimonialHandler(t)

	mock.ExpectExec("DELETE FROM testimonials").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/testimonials/8?:id=8", nil)
	rr := httptest.NewRecorder()
	h.DeleteTestimonial(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Testimonial not found") {
		t.Errorf("unexpected error body: %s", rr.Body.String())
	}
}
