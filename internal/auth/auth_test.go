package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-portal-backend/internal/config"
	apperrors "sales-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(secret string) *AuthService {
	return NewAuthService(&config.Config{JWTSecret: secret}, validator.New())
}

func TestLogin(t *testing.T) {
	service := testAuthService("test-signing-key")

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, err := service.Login(&LoginRequest{
			Email:    "demo@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "demo@example.com", claims.Email)
		assert.Equal(t, "demo@example.com", claims.Subject)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		token, err := service.Login(&LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		token, err := service.Login(&LoginRequest{
			Email:    "demo@example.com",
			Password: "12345",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := service.Login(&LoginRequest{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestJWTOperations(t *testing.T) {
	service := testAuthService("test-signing-key-for-jwt-operations")

	token, err := service.Login(&LoginRequest{
		Email:    "demo@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := service.ValidateJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "demo@example.com", claims.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := testAuthService("a-completely-different-key")
		_, err := other.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := testAuthService("test-signing-key")
	handler := NewAuthHandler(service)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
		handler.Login(c)
		return w
	}

	t.Run("success", func(t *testing.T) {
		w := post(`{"email":"demo@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "demo@example.com", response.Email)
		assert.NotEmpty(t, response.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := post(`{"email":"demo@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(`{"email":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := testAuthService("test-signing-key")
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})

	get := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid bearer token passes", func(t *testing.T) {
		token, err := service.Login(&LoginRequest{
			Email:    "demo@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		w := get("Bearer " + token)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "demo@example.com", response["email"])
	})

	t.Run("missing header", func(t *testing.T) {
		w := get("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := get("Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := get("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
