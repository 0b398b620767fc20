package service

import (
	"testing"
	"time"

	"postboard/internal/auth"
	"postboard/model"
	"postboard/utils"

	"github.com/stretchr/testify/require"
)

func newUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(store, tokens), store
}

func registerUser(t *testing.T, s *UserService, email, password string) *model.User {
	t.Helper()
	user := &model.User{
		Name:        "Alice",
		Email:       email,
		PhoneNumber: "555" + email,
		Role:        "mentor",
	}
	require.NoError(t, s.Register(user, password))
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	s, store := newUserService()
	registerUser(t, s, "a@example.com", "hunter22")

	stored, err := store.FindByEmail("a@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", stored.PasswordHash)
	require.True(t, utils.CheckPasswordHash("hunter22", stored.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, store := newUserService()
	registerUser(t, s, "a@example.com", "hunter22")

	dup := &model.User{Name: "Bob", Email: "a@example.com", PhoneNumber: "999", Role: "mentee"}
	require.ErrorIs(t, s.Register(dup, "other-pass"), ErrUserExists)

	// Still exactly one record.
	users, err := store.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s, _ := newUserService()
	u := registerUser(t, s, "a@example.com", "hunter22")

	token, err := s.Login("a@example.com", "hunter22")
	require.NoError(t, err)

	tm := auth.NewTokenManager("test-secret", time.Hour)
	userID, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, userID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s, _ := newUserService()
	registerUser(t, s, "a@example.com", "hunter22")

	_, wrongPwd := s.Login("a@example.com", "wrong")
	_, unknown := s.Login("nobody@example.com", "hunter22")

	require.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	require.Equal(t, wrongPwd.Error(), unknown.Error())
}

func TestUpdateRetainsUnsetFields(t *testing.T) {
	s, _ := newUserService()
	u := registerUser(t, s, "a@example.com", "hunter22")

	birth := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)
	updated, err := s.Update(u.ID, UpdateUserInput{Specialisation: "cardiology", BirthYear: &birth})
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.Name)
	require.Equal(t, "cardiology", updated.Specialisation)
	require.Equal(t, &birth, updated.BirthYear)

	// Avatar replaced only when supplied.
	updated, err = s.Update(u.ID, UpdateUserInput{AvatarURL: "/uploads/1-a.png"})
	require.NoError(t, err)
	require.Equal(t, "/uploads/1-a.png", updated.AvatarURL)

	updated, err = s.Update(u.ID, UpdateUserInput{Name: "Alicia"})
	require.NoError(t, err)
	require.Equal(t, "/uploads/1-a.png", updated.AvatarURL)
	require.Equal(t, "Alicia", updated.Name)
}

func TestUpdateMissingUser(t *testing.T) {
	s, _ := newUserService()
	_, err := s.Update(404, UpdateUserInput{Name: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetMissingUser(t *testing.T) {
	s, _ := newUserService()
	_, err := s.Get(404)
	require.ErrorIs(t, err, ErrNotFound)
}
