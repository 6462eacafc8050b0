package repositories

import (
	"context"
	"database/sql"
)

// The category column uses a binary collation so that category filtering on
// the public catalog stays case-sensitive. Uniqueness of usernames and
// testimonial emails is enforced here, at the database level, so the insert
// paths stay a single atomic statement.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		price DECIMAL(10,2) NOT NULL DEFAULT 0,
		description TEXT,
		image VARCHAR(512)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'user',
		UNIQUE KEY uq_users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		message TEXT,
		rating INT NOT NULL DEFAULT 0,
		UNIQUE KEY uq_testimonials_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subject VARCHAR(255),
		message TEXT,
		is_read TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func SetupSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
