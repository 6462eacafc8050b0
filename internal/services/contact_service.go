package services

import (
	"context"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
)

type ContactService struct {
	ContactRepo *repositories.ContactRepository
}

func (s *ContactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	return s.ContactRepo.GetContacts(ctx)
}

func (s *ContactService) CreateContact(ctx context.Context, c models.Contact) error {
	return s.ContactRepo.CreateContact(ctx, c)
}

func (s *ContactService) SetContactRead(ctx context.Context, id int, isRead bool) error {
	return s.ContactRepo.SetContactRead(ctx, id, isRead)
}

func (s *ContactService) DeleteContact(ctx context.Context, id int) error {
	return s.ContactRepo.DeleteContact(ctx, id)
}
