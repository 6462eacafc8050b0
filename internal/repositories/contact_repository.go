package repositories

import (
	"context"
	"database/sql"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r *ContactRepository) GetContacts(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) CreateContact(ctx context.Context, c models.Contact) error {
	query := `INSERT INTO contacts (name, email, subject, message) VALUES (?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, c.Name, c.Email, c.Subject, c.Message)
	return err
}

func (r *ContactRepository) SetContactRead(ctx context.Context, id int, isRead bool) error {
	query := `UPDATE contacts SET is_read = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, isRead, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id int) error {
	query := `DELETE FROM contacts WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrContactNotFound
	}
	return nil
}
