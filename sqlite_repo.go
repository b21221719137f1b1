package signup

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

type sqliteUserRepository struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	activation_token TEXT NOT NULL,
	inactive INTEGER NOT NULL
);`

// NewSQLiteUserRepository opens (or creates) the database at path and
// bootstraps the schema. The UNIQUE column on email is the backend's
// duplicate-detection authority.
func NewSQLiteUserRepository(path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteUserRepository{db: db}, nil
}

func (repo *sqliteUserRepository) FindByEmail(email string) (*User, error) {
	row := repo.db.QueryRow(
		`SELECT id, username, email, password_hash, activation_token, inactive
		 FROM users WHERE email = ?`, email)

	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ActivationToken, &u.Inactive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *sqliteUserRepository) Store(u *User) error {
	_, err := repo.db.Exec(
		`INSERT INTO users (id, username, email, password_hash, activation_token, inactive)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(u.ID), u.Username, u.Email, u.PasswordHash, u.ActivationToken, u.Inactive)

	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrExistingEmail
	}
	return err
}

func (repo *sqliteUserRepository) Delete(id ID) error {
	_, err := repo.db.Exec(`DELETE FROM users WHERE id = ?`, string(id))
	return err
}

func (repo *sqliteUserRepository) DeleteAll() error {
	_, err := repo.db.Exec(`DELETE FROM users`)
	return err
}
