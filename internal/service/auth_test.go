package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
	"github.com/ilumaty/greendog-backend/internal/repository/mocks"
)

const testJWTSecret = "test-secret-key"

func newAuthService(t *testing.T, userRepo *mocks.UserRepository, breedRepo *mocks.BreedRepository) *AuthService {
	t.Helper()
	svc, err := NewAuthService(userRepo, breedRepo, testJWTSecret, 24)
	require.NoError(t, err)
	return svc
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewAuthService_EmptySecret(t *testing.T) {
	_, err := NewAuthService(new(mocks.UserRepository), new(mocks.BreedRepository), "", 24)
	assert.Error(t, err)
}

func TestSignup_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := newAuthService(t, userRepo, breedRepo)
	ctx := context.Background()

	newID := primitive.NewObjectID()
	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = newID
	}).Return(nil).Once()

	user, token, err := svc.Signup(ctx, "  Jean@Example.com ", "secret123", "Jean", "Dupont")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, "jean@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	// The hash stored in the repo must verify against the raw password.
	inserted := userRepo.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("secret123")))
	userRepo.AssertExpectations(t)
}

func TestSignup_EmailTaken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := newAuthService(t, userRepo, breedRepo)

	existing := &domain.User{ID: primitive.NewObjectID(), Email: "jean@example.com"}
	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(existing, nil).Once()

	_, _, err := svc.Signup(context.Background(), "jean@example.com", "secret123", "Jean", "Dupont")

	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestSignup_UniqueIndexRace(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := newAuthService(t, userRepo, breedRepo)

	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry).Once()

	_, _, err := svc.Signup(context.Background(), "jean@example.com", "secret123", "Jean", "Dupont")

	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertExpectations(t)
}

func TestSignup_InvalidInput(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	_, _, err := svc.Signup(context.Background(), "not-an-email", "123", "", "Dupont")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Fields)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	userID := primitive.NewObjectID()
	stored := &domain.User{
		ID:       userID,
		Email:    "jean@example.com",
		Password: hashForTest(t, "secret123"),
		Role:     domain.RoleUser,
	}
	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(stored, nil).Once()
	userRepo.On("UpdateLastLogin", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, token, err := svc.Login(context.Background(), "jean@example.com", "secret123")

	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.NotNil(t, user.LastLogin)
	assert.NotEmpty(t, token)

	// The token must carry the user id and role and verify with the secret.
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.Hex(), claims["userId"])
	assert.Equal(t, domain.RoleUser, claims["role"])
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	stored := &domain.User{
		ID:       primitive.NewObjectID(),
		Email:    "jean@example.com",
		Password: hashForTest(t, "secret123"),
	}
	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(stored, nil).Once()

	_, _, err := svc.Login(context.Background(), "jean@example.com", "wrong")

	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	userRepo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// Same error as a wrong password: the response must not reveal
	// whether the account exists.
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_LastLoginStampBestEffort(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	stored := &domain.User{
		ID:       primitive.NewObjectID(),
		Email:    "jean@example.com",
		Password: hashForTest(t, "secret123"),
	}
	userRepo.On("FindByEmail", mock.Anything, "jean@example.com").Return(stored, nil).Once()
	userRepo.On("UpdateLastLogin", mock.Anything, stored.ID, mock.AnythingOfType("time.Time")).Return(assert.AnError).Once()

	user, token, err := svc.Login(context.Background(), "jean@example.com", "secret123")

	// A failed stamp must not block the session.
	require.NoError(t, err)
	assert.Nil(t, user.LastLogin)
	assert.NotEmpty(t, token)
}

func TestProfile_ResolvesFavorites(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	breedRepo := new(mocks.BreedRepository)
	svc := newAuthService(t, userRepo, breedRepo)

	userID := primitive.NewObjectID()
	breedID := primitive.NewObjectID()
	stored := &domain.User{ID: userID, Password: "hash", Favorites: []primitive.ObjectID{breedID}}
	userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil).Once()
	breedRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{breedID}).
		Return([]domain.Breed{{ID: breedID, Name: "Beagle"}}, nil).Once()

	user, favorites, err := svc.Profile(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, user.Password)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Beagle", favorites[0].Name)
}

func TestChangePassword_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	userID := primitive.NewObjectID()
	stored := &domain.User{ID: userID, Password: hashForTest(t, "oldpass")}
	userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil).Once()
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil).Once()

	err := svc.ChangePassword(context.Background(), userID, "oldpass", "newpass123")

	require.NoError(t, err)
	newHash := userRepo.Calls[1].Arguments.String(2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpass123")))
	userRepo.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	userID := primitive.NewObjectID()
	stored := &domain.User{ID: userID, Password: hashForTest(t, "oldpass")}
	userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil).Once()

	err := svc.ChangePassword(context.Background(), userID, "not-the-one", "newpass123")

	assert.ErrorIs(t, err, ErrWrongPassword)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_TooShort(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newAuthService(t, userRepo, new(mocks.BreedRepository))

	err := svc.ChangePassword(context.Background(), primitive.NewObjectID(), "oldpass", "abc")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
