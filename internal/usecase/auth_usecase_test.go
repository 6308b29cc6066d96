package usecase

import (
	"encoding/json"
	"testing"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(f *fixture) AuthUsecase {
	return NewAuthUsecase(f.db, f.log, repository.NewUserRepository(), f.audit, f.jwt)
}

func TestAuthUsecase_RegisterIssuesTokenWithoutPassword(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUsecase(f)

	resp, err := uc.Register(f.ctx, &dto.RegisterRequest{
		Email:     "  Ada@Example.com ",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", resp.Email)
	assert.Equal(t, "patient", resp.Role)
	assert.Equal(t, "Ada", resp.Profile.FirstName)
	assert.False(t, resp.OnboardingCompleted)

	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, entity.RolePatient, claims.Role)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret1")
	assert.NotContains(t, string(raw), "password")

	stored, err := repository.NewUserRepository().FindByEmail(f.db, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.Equal(t, "en", stored.PreferredLanguage)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUsecase(f)

	_, err := uc.Register(f.ctx, &dto.RegisterRequest{Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(f.ctx, &dto.RegisterRequest{Email: "DUP@example.com", Password: "another1"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthUsecase_LoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUsecase(f)

	_, err := uc.Register(f.ctx, &dto.RegisterRequest{Email: "pat@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := uc.Login(f.ctx, &dto.LoginRequest{Email: "pat@example.com", Password: "wrong"})
	_, unknownEmail := uc.Login(f.ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthUsecase_UnknownEmailStillHashes(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUsecase(f)

	cost, err := bcrypt.Cost(dummyPasswordHash())
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	var compared [][]byte
	original := comparePassword
	comparePassword = func(hash, password []byte) error {
		compared = append(compared, hash)
		return original(hash, password)
	}
	t.Cleanup(func() { comparePassword = original })

	_, err = uc.Login(f.ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.Equal(t, dummyPasswordHash(), compared[0])
}

func TestAuthUsecase_LoginAndCurrentUser(t *testing.T) {
	f := newFixture(t)
	uc := newAuthUsecase(f)

	registered, err := uc.Register(f.ctx, &dto.RegisterRequest{Email: "pat@example.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := uc.Login(f.ctx, &dto.LoginRequest{Email: "Pat@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	me, err := uc.GetCurrentUser(f.ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", me.Email)
	assert.Equal(t, []string{entity.AuditActionUserLogin, entity.AuditActionUserRegister}, f.auditActions(t))
}
