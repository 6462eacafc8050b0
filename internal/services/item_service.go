package services

import (
	"context"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
)

type ItemService struct {
	ItemRepo *repositories.ItemRepository
}

func (s *ItemService) GetItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetItems(ctx)
}

func (s *ItemService) GetItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	return s.ItemRepo.GetItemsByCategory(ctx, category)
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) UpdateItem(ctx context.Context, item models.Item) error {
	return s.ItemRepo.UpdateItem(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}
