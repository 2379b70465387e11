package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "blog-backend/internal/auth/domain"
	authdto "blog-backend/internal/auth/dto"
	"blog-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthUsecase is a scriptable AuthUsecase for handler tests
type mockAuthUsecase struct {
	registerUser  *authdomain.User
	registerError error
	loginTokens   *authdto.TokenResponse
	loginError    error
	refreshTokens *authdto.TokenResponse
	refreshError  error
	validateUser  *authdomain.User
	validateError error
}

func (m *mockAuthUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	return m.registerUser, m.registerError
}

func (m *mockAuthUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return m.loginTokens, m.loginError
}

func (m *mockAuthUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	return m.refreshTokens, m.refreshError
}

func (m *mockAuthUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	return m.validateUser, m.validateError
}

func setupRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewAuthHandler(uc)
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/refresh", handler.RefreshToken)
	r.GET("/api/auth/me", AuthMiddleware(uc), handler.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandlerCreated(t *testing.T) {
	uc := &mockAuthUsecase{
		registerUser: &authdomain.User{
			ID:        "user-1",
			FirstName: "Jane",
			LastName:  "Doe",
			Username:  "janedoe",
			Email:     "janedoe@example.com",
			Password:  "$2a$10$hash",
			IsActive:  true,
		},
	}
	r := setupRouter(uc)

	w := postJSON(t, r, "/api/auth/register", gin.H{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"username":         "janedoe",
		"email":            "janedoe@example.com",
		"password":         "Password@123",
		"confirm_password": "Password@123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "janedoe@example.com", body["email"])
	assert.NotContains(t, body, "password", "response must never carry the password")
}

func TestRegisterHandlerFieldErrors(t *testing.T) {
	uc := &mockAuthUsecase{
		registerError: validation.Errors{"confirm_password": errors.New("Password do not match")},
	}
	r := setupRouter(uc)

	w := postJSON(t, r, "/api/auth/register", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Password do not match", body["confirm_password"])
}

func TestLoginHandlerSuccess(t *testing.T) {
	uc := &mockAuthUsecase{
		loginTokens: &authdto.TokenResponse{Status: true, Access: "access-token", Refresh: "refresh-token"},
	}
	r := setupRouter(uc)

	w := postJSON(t, r, "/api/auth/login", gin.H{"email": "janedoe@example.com", "password": "Password@123"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "access-token", body["access"])
	assert.Equal(t, "refresh-token", body["refresh"])
}

func TestLoginHandlerAuthenticationFailed(t *testing.T) {
	uc := &mockAuthUsecase{loginError: usecase.ErrAuthenticationFailed}
	r := setupRouter(uc)

	w := postJSON(t, r, "/api/auth/login", gin.H{"email": "janedoe@example.com", "password": "wrong"})

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Authentication failed", body["detail"])
}

func TestRefreshHandlerInvalidToken(t *testing.T) {
	uc := &mockAuthUsecase{refreshError: usecase.ErrInvalidToken}
	r := setupRouter(uc)

	w := postJSON(t, r, "/api/auth/refresh", gin.H{"refresh": "expired"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		uc         *mockAuthUsecase
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			uc:         &mockAuthUsecase{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			uc:         &mockAuthUsecase{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			uc:         &mockAuthUsecase{validateError: usecase.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer good",
			uc:         &mockAuthUsecase{validateUser: &authdomain.User{ID: "user-1", Username: "janedoe"}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.uc)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
