package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	validToken := signToken(t, testSecret, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(testSecret)(next)

	t.Run("accepts a bearer header token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/players", nil)
		r.Header.Set("Authorization", "Bearer "+validToken)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts a query token for websocket clients", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/ws?token="+validToken, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/players", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := signToken(t, testSecret, jwt.MapClaims{
			"user_id": userID.String(),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		r := httptest.NewRequest(http.MethodGet, "/players", nil)
		r.Header.Set("Authorization", "Bearer "+expired)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		forged := signToken(t, []byte("other-secret"), jwt.MapClaims{
			"user_id": userID.String(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		r := httptest.NewRequest(http.MethodGet, "/players", nil)
		r.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserIDFromContext_NoClaims(t *testing.T) {
	_, err := GetUserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.ErrorIs(t, err, ErrNoUserInContext)
}
