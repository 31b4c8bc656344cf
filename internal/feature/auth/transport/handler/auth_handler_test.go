package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scout_backend/internal/feature/auth/domain/entity"
	"scout_backend/internal/feature/auth/usecase"
	jwtmw "scout_backend/internal/platform/jwt"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc        func(ctx context.Context, name, email, password string) (*entity.User, error)
	LoginFunc         func(ctx context.Context, email, password string) (string, error)
	ProfileFunc       func(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return &entity.User{ID: 1, CompanyID: 10, Name: name, Email: email}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed")
}

func (m *mockAuthUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAuthUsecase) UpdateProfile(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, name, currentPassword, newPassword)
	}
	return nil, errors.New("update failed")
}

// TestAuthHandler_Signup はサインアップエンドポイントの各種シナリオをテーブル駆動テストで検証します。
func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, email, password string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "田中", "email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return &entity.User{ID: 1, CompanyID: 10, Name: name, Email: email, Role: entity.RoleMember}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "田中", "email": "invalid-email", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "田中", "email": "existing@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: internal error",
			requestBody: gin.H{"name": "田中", "email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/signup", handler.Signup)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var responseBody gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Contains(t, responseBody, "user")
			}
		})
	}
}

// TestAuthHandler_Login はログインエンドポイントの各種シナリオをテーブル駆動テストで検証します。
func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "signed-token"},
		},
		{
			name:        "failure: invalid credentials return generic message",
			requestBody: gin.H{"email": "test@example.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid email or password"},
		},
		{
			name:           "failure: missing email",
			requestBody:    gin.H{"password": "password123"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var responseBody gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Equal(t, tt.expectedBody, responseBody)
			}
		})
	}
}

// withAuthContext はJWTミドルウェア通過後と同じコンテキスト値を注入します。
func withAuthContext(userID, companyID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Set(jwtmw.ContextCompanyID, companyID)
		c.Next()
	}
}

// TestAuthHandler_Profile はプロフィール取得エンドポイントを検証します。
func TestAuthHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockAuthUsecase{
		ProfileFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			assert.Equal(t, uint(1), userID)
			return &entity.User{ID: 1, CompanyID: 10, Name: "田中", Email: "test@example.com"}, nil
		},
	}
	handler := NewAuthHandler(mockUC)

	router := gin.New()
	router.GET("/api/user/profile", withAuthContext(1, 10), handler.Profile)

	req, _ := http.NewRequest(http.MethodGet, "/api/user/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.Equal(t, "田中", responseBody["name"])
}

// TestAuthHandler_UpdateProfile はプロフィール更新エンドポイントの各種シナリオを検証します。
func TestAuthHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockUpdateFunc func(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success: rename",
			requestBody: gin.H{"name": "新しい名前"},
			mockUpdateFunc: func(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error) {
				return &entity.User{ID: 1, Name: name}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "failure: wrong current password",
			requestBody: gin.H{"currentPassword": "wrong", "newPassword": "new-password123"},
			mockUpdateFunc: func(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error) {
				return nil, usecase.ErrPasswordMismatch
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: new password too short (binding)",
			requestBody:    gin.H{"currentPassword": "current", "newPassword": "short"},
			mockUpdateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{UpdateProfileFunc: tt.mockUpdateFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.PUT("/api/user/profile", withAuthContext(1, 10), handler.UpdateProfile)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPut, "/api/user/profile", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
