package service

import (
	"testing"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepo(db))
}

func TestCreateUserDefaultsToCommonRole(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "segredo1"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCommon, user.Role)
	assert.NotEqual(t, "segredo1", user.Password, "password must be stored hashed")
	assert.True(t, user.CheckPassword("segredo1"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "segredo1"})
	require.NoError(t, err)

	_, err = svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "outra123"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateUser(&CreateUserRequest{Password: "segredo1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "curta"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "segredo1", Role: "superuser"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUserRoleAndPassword(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.CreateUser(&CreateUserRequest{Username: "joao", Password: "segredo1"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(user.ID, &UpdateUserRequest{Role: model.RoleAdmin, Password: "novasenha"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.True(t, updated.CheckPassword("novasenha"))
}
