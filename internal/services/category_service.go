package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

// CategoryService serves the storefront section list. The list is static per
// deployment and comes from a YAML file rather than the database.
type CategoryService struct {
	categories []models.Category
}

func NewCategoryService(path string) (*CategoryService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	return &CategoryService{categories: categories}, nil
}

func (s *CategoryService) GetCategories() []models.Category {
	return s.categories
}
