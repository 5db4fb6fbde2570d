package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, userID primitive.ObjectID, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.Hex(),
		"role":   role,
		"exp":    now.Add(expiresIn).Unix(),
		"iat":    now.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		role, _ := c.Get(ContextRole)
		c.JSON(http.StatusOK, gin.H{"userId": id.Hex(), "role": role})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuth_ValidToken(t *testing.T) {
	router := authTestRouter()
	userID := primitive.NewObjectID()

	w := doRequest(router, "Bearer "+signToken(t, userID, "user", time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, userID.Hex(), body["userId"])
	assert.Equal(t, "user", body["role"])
}

func TestAuth_MissingToken(t *testing.T) {
	router := authTestRouter()

	w := doRequest(router, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, CodeNoToken, body["code"])
	assert.Equal(t, "Token manquant ou invalide", body["message"])
}

func TestAuth_ExpiredToken(t *testing.T) {
	router := authTestRouter()

	w := doRequest(router, "Bearer "+signToken(t, primitive.NewObjectID(), "user", -time.Hour))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, CodeTokenExpired, body["code"])
	assert.Equal(t, "Token a expiré", body["message"])
}

func TestAuth_GarbageToken(t *testing.T) {
	router := authTestRouter()

	w := doRequest(router, "Bearer not.a.token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, CodeInvalidToken, body["code"])
}

func TestAuth_WrongSecret(t *testing.T) {
	router := authTestRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+signed)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeInvalidToken, decodeBody(t, w)["code"])
}

func TestAuth_MalformedHeader(t *testing.T) {
	router := authTestRouter()

	w := doRequest(router, "NotBearer xyz")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeNoToken, decodeBody(t, w)["code"])
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	router := authTestRouter(RequireAdmin())

	w := doRequest(router, "Bearer "+signToken(t, primitive.NewObjectID(), "admin", time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsUser(t *testing.T) {
	router := authTestRouter(RequireAdmin())

	w := doRequest(router, "Bearer "+signToken(t, primitive.NewObjectID(), "user", time.Hour))

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, CodeAdminRequired, body["code"])
	assert.Equal(t, "Accès ADMIN requis", body["message"])
}
