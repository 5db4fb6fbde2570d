package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys set by the auth gate.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// Rejection reason codes returned in the error envelope.
const (
	CodeNoToken       = "NO_TOKEN"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeAdminRequired = "ADMIN_REQUIRED"
)

var errMissingAuthHeader = errors.New("missing Authorization header")

// Auth returns a middleware validating the bearer token. On success the
// resolved user id and claimed role are attached to the context; handlers
// trust these without re-querying identity.
func Auth(jwtSecret string) gin.HandlerFunc {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty for Auth middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			logrus.Warn("Auth middleware: missing or malformed Authorization header")
			reject(c, "Token manquant ou invalide", CodeNoToken)
			return
		}

		claims, err := validateToken(tokenStr, jwtSecret)
		if err != nil {
			var validationErr *jwt.ValidationError
			if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				logrus.Warn("Auth middleware: token expired")
				reject(c, "Token a expiré", CodeTokenExpired)
				return
			}
			logrus.WithError(err).Warn("Auth middleware: invalid token")
			reject(c, "Token non-valide", CodeInvalidToken)
			return
		}

		idClaim, ok := claims["userId"].(string)
		if !ok {
			logrus.Warn("Auth middleware: userId claim missing or not a string")
			reject(c, "Token non-valide", CodeInvalidToken)
			return
		}
		userID, err := primitive.ObjectIDFromHex(idClaim)
		if err != nil {
			logrus.Warn("Auth middleware: userId claim is not a valid object id")
			reject(c, "Token non-valide", CodeInvalidToken)
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		logrus.WithField("user_id", userID.Hex()).Debug("Auth middleware: user authenticated")
		c.Next()
	}
}

// RequireAdmin rejects unless the attached role is admin. Must run
// strictly after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Accès ADMIN requis",
				"code":    CodeAdminRequired,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID retrieves the authenticated user id set by Auth.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

func reject(c *gin.Context, message, code string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"code":    code,
	})
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingAuthHeader
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", jwt.ErrTokenMalformed
	}
	return parts[1], nil
}

func validateToken(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token or claims type")
}
