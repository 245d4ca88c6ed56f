package repo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repair-tracker/internal/domain"
)

func TestUserRepo_CreateAndFind(t *testing.T) {
	t.Parallel()

	r := NewUserRepo(newTestDB(t))
	u := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, r.Create(u))
	require.NotZero(t, u.ID)

	byID, err := r.FindByID(u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	byName, err := r.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)

	byEmail, err := r.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepo_MissingReturnsNil(t *testing.T) {
	t.Parallel()

	r := NewUserRepo(newTestDB(t))

	u, err := r.FindByID(123)
	require.NoError(t, err)
	require.Nil(t, u)

	u, err = r.FindByUsername("ghost")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserRepo_UniqueUsernameAndEmail(t *testing.T) {
	t.Parallel()

	r := NewUserRepo(newTestDB(t))
	require.NoError(t, r.Create(&domain.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}))

	err := r.Create(&domain.User{Username: "bob", Email: "other@example.com", PasswordHash: "x"})
	require.Error(t, err)

	err = r.Create(&domain.User{Username: "bob2", Email: "bob@example.com", PasswordHash: "x"})
	require.Error(t, err)
}
