package signup

type Service interface {
	Register(req registerUserRequest) (ID, error)
}

type Repository interface {
	FindByEmail(email string) (*User, error)
	Store(u *User) error
	// Delete removes the user with the given id. Deleting an id that does not
	// exist is a no-op, so a compensation step can safely be retried.
	Delete(id ID) error
	// DeleteAll exists for test support only.
	DeleteAll() error
}

type Notifier interface {
	SendActivationEmail(email, token string) error
}

type registerUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
