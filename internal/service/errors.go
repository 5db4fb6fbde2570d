package service

import (
	"errors"
	"strings"

	"github.com/ilumaty/greendog-backend/internal/domain"
)

// Business errors surfaced to the HTTP layer. The messages are the
// user-facing strings returned in the response envelope.
var (
	ErrAuthenticationFailed = errors.New("Identifiants invalides")
	ErrWrongPassword        = errors.New("Mot de passe actuel incorrect")
	ErrEmailTaken           = errors.New("Cet email est déjà utilisé")
	ErrBreedNameTaken       = errors.New("Cette race existe déjà")
	ErrUserNotFound         = errors.New("Utilisateur non trouvé")
	ErrBreedNotFound        = errors.New("Race non trouvée")
	ErrPostNotFound         = errors.New("Post non trouvé")
	ErrCommentNotFound      = errors.New("Commentaire non trouvé")
	ErrForbidden            = errors.New("Tu n'es pas autorisé à effectuer cette action")
	ErrInternalServer       = errors.New("internal server error")
)

// ValidationError carries structured per-field failures from the explicit
// entity validators.
type ValidationError struct {
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// NewValidationError wraps field errors; returns nil when the list is empty.
func NewValidationError(fields []domain.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// ValidationMessage builds a single-field validation error.
func ValidationMessage(field, message string) error {
	return &ValidationError{Fields: []domain.FieldError{{Field: field, Message: message}}}
}
