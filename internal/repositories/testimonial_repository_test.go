package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

func TestCreateTestimonialAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO testimonials").
		WithArgs("Jane", "jane@example.com", "Lovely shop", 5).
		WillReturnResult(sqlmock.NewResult(4, 1))

	repo := TestimonialRepository{DB: db}
	created, err := repo.CreateTestimonial(context.Background(), models.Testimonial{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Lovely shop",
		Rating:  5,
	})
	if err != nil {
		t.Fatalf("create testimonial: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected id 4, got %d", created.ID)
	}
}

func TestCreateTestimonialDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO testimonials").
		WithArgs("Jane", "jane@example.com", "Again", 4).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := TestimonialRepository{DB: db}
	_, err = repo.CreateTestimonial(context.Background(), models.Testimonial{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Again",
		Rating:  4,
	})
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestDeleteTestimonialZeroRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM testimonials").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TestimonialRepository{DB: db}
	if err := repo.DeleteTestimonial(context.Background(), 8); !errors.Is(err, models.ErrTestimonialNotFound) {
		t.Fatalf("expected ErrTestimonialNotFound, got %v", err)
	}
}
