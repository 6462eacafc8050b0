package repositories

import (
	"context"
	"database/sql"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func (r *TestimonialRepository) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT id, name, email, message, rating FROM testimonials`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Message, &t.Rating); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// CreateTestimonial relies on the unique key on email: a duplicate submission
// fails inside the single INSERT, so two concurrent submissions with the same
// email cannot both slip through.
func (r *TestimonialRepository) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	query := `INSERT INTO testimonials (name, email, message, rating) VALUES (?, ?, ?, ?)`
	result, err := r.DB.ExecContext(ctx, query, t.Name, t.Email, t.Message, t.Rating)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Testimonial{}, models.ErrDuplicateEmail
		}
		return models.Testimonial{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Testimonial{}, err
	}
	t.ID = int(id)
	return t, nil
}

func (r *TestimonialRepository) DeleteTestimonial(ctx context.Context, id int) error {
	query := `DELETE FROM testimonials WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTestimonialNotFound
	}
	return nil
}
