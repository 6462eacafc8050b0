package services

import (
	"context"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
)

type TestimonialService struct {
	TestimonialRepo *repositories.TestimonialRepository
}

func (s *TestimonialService) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.TestimonialRepo.GetTestimonials(ctx)
}

// CreateTestimonial accepts the rating as given. The storefront renders stars
// for 1-5 but submissions outside that range are stored unchanged.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	return s.TestimonialRepo.CreateTestimonial(ctx, t)
}

func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id int) error {
	return s.TestimonialRepo.DeleteTestimonial(ctx, id)
}
