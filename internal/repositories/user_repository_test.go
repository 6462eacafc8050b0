package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

func TestGetUserByUsernameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

	repo := UserRepository{DB: db}
	_, err = repo.GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("ADMINROSE", "hash", "admin").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := UserRepository{DB: db}
	_, err = repo.CreateUser(context.Background(), models.User{
		Username: "ADMINROSE",
		Password: "hash",
		Role:     "admin",
	})
	if !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUpsertAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users (.+) ON DUPLICATE KEY UPDATE").
		WithArgs("ADMINROSE", "hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := UserRepository{DB: db}
	if err := repo.UpsertAdmin(context.Background(), "ADMINROSE", "hash"); err != nil {
		t.Fatalf("upsert admin: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
