// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scout_backend/internal/feature/auth/domain/entity"
	"scout_backend/internal/feature/auth/transport/http/dto"
	"scout_backend/internal/feature/auth/usecase"
	jwtmw "scout_backend/internal/platform/jwt"
)

// AuthUsecase は認証・プロフィール操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup はプレースホルダー会社と初期ユーザーを登録します。
	Signup(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// Profile は自分自身のプロフィールを取得します。
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	// UpdateProfile は名前変更とパスワード変更を行います。
	UpdateProfile(ctx context.Context, userID uint, name, currentPassword, newPassword string) (*entity.User, error)
}

// AuthHandler は認証・プロフィール操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup は POST /api/auth/signup を処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "必要事項をすべて入力してください"})
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "このメールアドレスは既に登録されています"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "サーバー内部でエラーが発生しました"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "company_id", user.CompanyID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "ユーザー登録が完了しました",
		"user":    dto.NewUserResponse(user),
	})
}

// Login は POST /api/auth/login を処理します。
// 認証失敗時は401、成功時はJWTトークン付きで200を返却します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Profile は GET /api/user/profile を処理します。
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), jwtmw.UserID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("get profile failed", "error", err, "user_id", jwtmw.UserID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile は PUT /api/user/profile を処理します。
// 現在のパスワード確認に失敗した場合は400を返します。
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.UpdateProfile(c.Request.Context(), jwtmw.UserID(c), req.Name, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "現在のパスワードが正しくありません"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			slog.Error("update profile failed", "error", err, "user_id", jwtmw.UserID(c))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新に失敗しました"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "プロフィールを更新しました",
		"user":    dto.NewUserResponse(user),
	})
}
