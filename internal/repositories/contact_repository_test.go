package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

func TestGetContactsOrderedByRecency(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	newer := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "is_read", "created_at"}).
		AddRow(2, "Bob", "bob@example.com", "Order", "Is my order ready?", false, newer).
		AddRow(1, "Ann", "ann@example.com", "Hours", "When are you open?", true, older)

	mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
		WillReturnRows(rows)

	repo := ContactRepository{DB: db}
	contacts, err := repo.GetContacts(context.Background())
	if err != nil {
		t.Fatalf("get contacts: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	for i := 1; i < len(contacts); i++ {
		if contacts[i].CreatedAt.After(contacts[i-1].CreatedAt) {
			t.Errorf("contacts out of order at %d: %v after %v", i, contacts[i].CreatedAt, contacts[i-1].CreatedAt)
		}
	}
	if !contacts[1].IsRead {
		t.Errorf("expected second contact to be read")
	}
}

func TestCreateContactInsertsFieldsOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs("Ann", "ann@example.com", "Hours", "When are you open?").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := ContactRepository{DB: db}
	err = repo.CreateContact(context.Background(), models.Contact{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Hours",
		Message: "When are you open?",
	})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetContactRead(t *testing.T) {
	cases := []struct {
		name     string
		affected int64
		isRead   bool
		wantErr  error
	}{
		{"marks read", 1, true, nil},
		{"marks unread", 1, false, nil},
		{"missing row", 0, true, models.ErrContactNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock new: %v", err)
			}
			defer db.Close()

			mock.ExpectExec("UPDATE contacts SET is_read").
				WithArgs(tc.isRead, 3).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			repo := ContactRepository{DB: db}
			err = repo.SetContactRead(context.Background(), 3, tc.isRead)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("set contact read: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDeleteContactZeroRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ContactRepository{DB: db}
	if err := repo.DeleteContact(context.Background(), 11); !errors.Is(err, models.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
