package signup

import "sync"

type userRepository struct {
	mu    sync.Mutex
	users map[ID]*User
}

func NewUserRepository() Repository {
	return &userRepository{users: map[ID]*User{}}
}

func (repo *userRepository) FindByEmail(email string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, u := range repo.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// Store enforces email uniqueness the way the durable backends do through
// their constraints, so races resolve identically on every backend.
func (repo *userRepository) Store(u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.users {
		if v.Email == u.Email {
			return ErrExistingEmail
		}
	}
	repo.users[u.ID] = u
	return nil
}

func (repo *userRepository) Delete(id ID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.users, id)
	return nil
}

func (repo *userRepository) DeleteAll() error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.users = map[ID]*User{}
	return nil
}
