package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

var validSizes = map[string]bool{
	SizeSmall: true, SizeMedium: true, SizeLarge: true, SizeExtraLarge: true,
}

var validActivityLevels = map[string]bool{
	ActivityLow: true, ActivityModerate: true, ActivityHigh: true, ActivityVeryHigh: true,
}

// ValidateSignup checks the fields of a new account.
func ValidateSignup(email, password, firstName, lastName string) []FieldError {
	var errs []FieldError
	if email == "" {
		errs = append(errs, FieldError{"email", "L'email est requis"})
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{"email", "Merci de mettre un email valide"})
	}
	if password == "" {
		errs = append(errs, FieldError{"password", "Mot de passe requis"})
	} else if len(password) < 6 {
		errs = append(errs, FieldError{"password", "Il faut minimum 6 caractères"})
	}
	if firstName == "" {
		errs = append(errs, FieldError{"firstName", "Prénom requis"})
	} else if len([]rune(firstName)) < 2 {
		errs = append(errs, FieldError{"firstName", "Minimum 2 caractères pour le prénom"})
	}
	if lastName == "" {
		errs = append(errs, FieldError{"lastName", "Le nom de famille est requis"})
	} else if len([]rune(lastName)) < 2 {
		errs = append(errs, FieldError{"lastName", "Le nom de famille doit contenir 2 caractères"})
	}
	return errs
}

// ValidateProfileUpdate checks the supplied fields of a partial profile update.
func ValidateProfileUpdate(u ProfileUpdate) []FieldError {
	var errs []FieldError
	if u.FirstName != nil && len([]rune(strings.TrimSpace(*u.FirstName))) < 2 {
		errs = append(errs, FieldError{"firstName", "Minimum 2 caractères pour le prénom"})
	}
	if u.LastName != nil && len([]rune(strings.TrimSpace(*u.LastName))) < 2 {
		errs = append(errs, FieldError{"lastName", "Le nom de famille doit contenir 2 caractères"})
	}
	if u.Bio != nil && len([]rune(*u.Bio)) > 500 {
		errs = append(errs, FieldError{"bio", "Vous devez ajoutez au maximum 500 caractères"})
	}
	return errs
}

// ValidateBreed checks a breed before insertion.
func ValidateBreed(b *Breed) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, FieldError{"name", "Race du chien est requis"})
	}
	if strings.TrimSpace(b.Description) == "" {
		errs = append(errs, FieldError{"description", "Une description est requise"})
	}
	if !validSizes[b.Characteristics.Size] {
		errs = append(errs, FieldError{"characteristics.size", "Taille invalide"})
	}
	if b.Characteristics.ActivityLevel != "" && !validActivityLevels[b.Characteristics.ActivityLevel] {
		errs = append(errs, FieldError{"characteristics.activityLevel", "Niveau d'activité invalide"})
	}
	return errs
}

// ValidatePost checks the required fields of a new post.
func ValidatePost(title, content string) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{"title", "Title is required"})
	} else if len([]rune(title)) > 200 {
		errs = append(errs, FieldError{"title", "Title must be less than 200 characters"})
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, FieldError{"content", "Content is required"})
	} else if len([]rune(content)) < 10 {
		errs = append(errs, FieldError{"content", "Content must be at least 10 characters"})
	}
	return errs
}

// ValidateComment checks a comment body (1 to 1000 characters after trimming).
func ValidateComment(content string) []FieldError {
	trimmed := strings.TrimSpace(content)
	var errs []FieldError
	if trimmed == "" {
		errs = append(errs, FieldError{"content", "Un commentaire est requis"})
	} else if len([]rune(trimmed)) > 1000 {
		errs = append(errs, FieldError{"content", "Le commentaire doit être moins de 1000 caractères"})
	}
	return errs
}

// Messages flattens field errors for the error envelope.
func Messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
