package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilumaty/greendog-backend/internal/domain"
	"github.com/ilumaty/greendog-backend/internal/repository"
)

// bcryptCost matches the cost factor used for every stored password hash.
const bcryptCost = 12

// AuthService handles accounts, credentials and session tokens.
type AuthService struct {
	userRepo  repository.UserRepository
	breedRepo repository.BreedRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

// NewAuthService creates an AuthService. jwtSecretKey must come from
// configuration; jwtExpiryHours defaults to 24 when not positive.
func NewAuthService(userRepo repository.UserRepository, breedRepo repository.BreedRepository, jwtSecretKey string, jwtExpiryHours int) (*AuthService, error) {
	if userRepo == nil || breedRepo == nil {
		panic("repositories cannot be nil for AuthService")
	}
	if jwtSecretKey == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	if jwtExpiryHours <= 0 {
		jwtExpiryHours = 24
	}
	return &AuthService{
		userRepo:  userRepo,
		breedRepo: breedRepo,
		jwtSecret: []byte(jwtSecretKey),
		jwtExpiry: time.Duration(jwtExpiryHours) * time.Hour,
	}, nil
}

// Signup registers a new account and returns the created user with a
// session token.
func (s *AuthService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	logCtx := logrus.WithField("email", email)

	if err := NewValidationError(domain.ValidateSignup(email, password, firstName, lastName)); err != nil {
		return nil, "", err
	}

	// Duplicate check up front keeps the precise message; the unique
	// email index still backs it against concurrent signups.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		logCtx.Warn("Signup rejected: email already used")
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error while checking email")
		return nil, "", ErrInternalServer
	}

	hash, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during signup")
		return nil, "", ErrInternalServer
	}

	user := &domain.User{
		Email:     email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
		Role:      domain.RoleUser,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Signup rejected: unique index hit")
			return nil, "", ErrEmailTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, "", ErrInternalServer
	}

	token, err := s.generateJWT(user.ID, user.Role)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate token after signup")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID.Hex()).Info("User registered")
	user.Password = ""
	return user, token, nil
}

// Login verifies credentials, stamps the last login and returns the user
// with a fresh session token. Any mismatch yields ErrAuthenticationFailed
// without revealing whether the email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	logCtx := logrus.WithField("email", email)

	if email == "" || password == "" {
		return nil, "", ValidationMessage("credentials", "Email et password sont requis")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login failed: unknown email")
		} else {
			logCtx.WithError(err).Warn("Login failed: error finding user")
		}
		return nil, "", ErrAuthenticationFailed
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login failed: wrong password")
		return nil, "", ErrAuthenticationFailed
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// The session is still valid; the stamp is best effort.
		logCtx.WithError(err).Warn("Failed to stamp last login")
	} else {
		user.LastLogin = &now
	}

	token, err := s.generateJWT(user.ID, user.Role)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate token during login")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID.Hex()).Info("User logged in")
	user.Password = ""
	return user, token, nil
}

// Profile returns the user with its favorite breeds resolved.
func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*domain.User, []domain.Breed, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID.Hex()).Error("Database error loading profile")
		return nil, nil, ErrInternalServer
	}

	favorites, err := s.breedRepo.FindByIDs(ctx, user.Favorites)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID.Hex()).Error("Database error resolving favorites")
		return nil, nil, ErrInternalServer
	}

	user.Password = ""
	return user, favorites, nil
}

// UpdateProfile applies a partial profile update.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error) {
	if err := NewValidationError(domain.ValidateProfileUpdate(update)); err != nil {
		return nil, err
	}
	if update.FirstName != nil {
		trimmed := strings.TrimSpace(*update.FirstName)
		update.FirstName = &trimmed
	}
	if update.LastName != nil {
		trimmed := strings.TrimSpace(*update.LastName)
		update.LastName = &trimmed
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID.Hex()).Error("Database error updating profile")
		return nil, ErrInternalServer
	}
	user.Password = ""
	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
// This is the only write path that hashes; profile saves never touch the
// password field.
func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	logCtx := logrus.WithField("user_id", userID.Hex())

	if currentPassword == "" || newPassword == "" {
		return ValidationMessage("password", "Les deux mot de passe sont requis")
	}
	if len(newPassword) < 6 {
		return ValidationMessage("newPassword", "Le nouveau mot de passe doit contenir plus de 6 caractères")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error loading user for password change")
		return ErrInternalServer
	}

	if !checkPassword(currentPassword, user.Password) {
		logCtx.Warn("Password change rejected: wrong current password")
		return ErrWrongPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash new password")
		return ErrInternalServer
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error storing new password")
		return ErrInternalServer
	}

	logCtx.Info("Password changed")
	return nil
}

// hashPassword hashes with the fixed cost factor.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword reports whether the password matches the stored hash.
// It never errors on a mismatch.
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// generateJWT signs a session token embedding the user id and role.
func (s *AuthService) generateJWT(userID primitive.ObjectID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.Hex(),
		"role":   role,
		"exp":    now.Add(s.jwtExpiry).Unix(),
		"iat":    now.Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
