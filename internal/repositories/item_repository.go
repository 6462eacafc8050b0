package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) GetItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, category, price, description, image FROM items`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Description, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	query := `SELECT id, name, category, price, description, image FROM items WHERE category = ?`
	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Description, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := `SELECT id, name, category, price, description, image FROM items WHERE id = ?`
	var item models.Item
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Description, &item.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, models.ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, category, price, description, image) VALUES (?, ?, ?, ?, ?)`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Category, item.Price, item.Description, item.Image)
	if err != nil {
		return models.Item{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(id)
	return item, nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) error {
	query := `UPDATE items SET name = ?, category = ?, price = ?, description = ?, image = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Category, item.Price, item.Description, item.Image, item.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	query := `DELETE FROM items WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
