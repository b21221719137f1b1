package signup

import (
	"errors"
	"fmt"
	"log/slog"
)

type service struct {
	users    Repository
	notifier Notifier
	logger   *slog.Logger
}

func NewService(users Repository, notifier Notifier, logger *slog.Logger) Service {
	return &service{users: users, notifier: notifier, logger: logger}
}

// Register runs the registration pipeline: validate the candidate, persist an
// inactive account with a hashed password and a fresh activation token, then
// send the activation email. A failed send deletes the account again, so no
// account ever outlives a notification we could not deliver. Every step runs
// at most once per request.
func (svc *service) Register(req registerUserRequest) (ID, error) {
	if fields := validateRequest(req, svc.users); len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &User{
		ID:              nextID(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    hash,
		ActivationToken: newActivationToken(),
		Inactive:        true,
	}

	if err := svc.users.Store(user); err != nil {
		// A concurrent request for the same email can slip past validation;
		// the store's unique constraint is the authority of last resort and
		// its verdict is reported just like the validation-time one.
		if errors.Is(err, ErrExistingEmail) {
			return "", &ValidationError{Fields: map[string]Code{"email": CodeEmailInUse}}
		}
		return "", fmt.Errorf("error saving user: %w", err)
	}

	if err := svc.notifier.SendActivationEmail(user.Email, user.ActivationToken); err != nil {
		svc.logger.Warn("activation email failed, deleting user",
			"id", string(user.ID), "error", err)
		if derr := svc.users.Delete(user.ID); derr != nil {
			svc.logger.Error("compensating delete failed",
				"id", string(user.ID), "error", derr)
		}
		return "", ErrNotification
	}

	return user.ID, nil
}
