package signup

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

type ID string

// User is a registered account. Accounts are always created inactive; the
// activation token is the secret a later activation step presents to flip
// Inactive off.
type User struct {
	ID              ID `bson:"_id"`
	Username        string
	Email           string
	PasswordHash    string
	ActivationToken string
	Inactive        bool
}

var (
	ErrNotFound      = errors.New("user not found")
	ErrExistingEmail = errors.New("email in use")
	ErrNotification  = errors.New("activation email could not be sent")
)

func nextID() ID {
	return ID(xid.New().String())
}

// IsValidID checks if a given id is valid based on the xid library definition
// of a valid id. This method should change if we ever change our uid
// generation library.
func IsValidID(id string) bool {
	_, err := xid.FromString(id)
	return err == nil
}

// newActivationToken returns a fresh random token, unrelated to any of the
// account's credentials.
func newActivationToken() string {
	return uuid.NewString()
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func checkPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
