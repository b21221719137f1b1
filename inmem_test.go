package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	u := &User{ID: nextID(), Username: "user1", Email: "angel@angel.com", Inactive: true}

	t.Run("stores and finds by email", func(t *testing.T) {
		assert.NoError(t, repo.Store(u))

		found, err := repo.FindByEmail("angel@angel.com")
		assert.NoError(t, err)
		assert.Equal(t, u, found)
	})

	t.Run("missing email is not found", func(t *testing.T) {
		_, err := repo.FindByEmail("nobody@angel.com")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("rejects a second user with the same email", func(t *testing.T) {
		dup := &User{ID: nextID(), Username: "user2", Email: "angel@angel.com", Inactive: true}
		assert.Equal(t, ErrExistingEmail, repo.Store(dup))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, repo.Delete(u.ID))
		assert.NoError(t, repo.Delete(u.ID))

		_, err := repo.FindByEmail("angel@angel.com")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete all empties the repository", func(t *testing.T) {
		assert.NoError(t, repo.Store(&User{ID: nextID(), Email: "a@b.com"}))
		assert.NoError(t, repo.Store(&User{ID: nextID(), Email: "c@d.com"}))

		assert.NoError(t, repo.DeleteAll())

		_, err := repo.FindByEmail("a@b.com")
		assert.Equal(t, ErrNotFound, err)
	})
}
