// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "scout_backend/internal/feature/auth/transport/handler"
	companyhandler "scout_backend/internal/feature/company/transport/handler"
	positionhandler "scout_backend/internal/feature/position/transport/handler"
	scouthandler "scout_backend/internal/feature/scout/transport/handler"
	studenthandler "scout_backend/internal/feature/student/transport/handler"
	"scout_backend/internal/platform/http/handler"
	jwtmw "scout_backend/internal/platform/jwt"
)

// NewRouter は全エンドポイントを登録したGinエンジンを生成します。
// /api 配下はJWT認証必須で、ハンドラーはコンテキストのcompanyIDでテナントスコープされます。
func NewRouter(
	authH *authhandler.AuthHandler,
	companyH *companyhandler.CompanyHandler,
	positionH *positionhandler.PositionHandler,
	studentH *studenthandler.StudentHandler,
	scoutH *scouthandler.ScoutHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// 新規ユーザー登録（プレースホルダー企業も同時に作成）
	r.POST("/api/auth/signup", authH.Signup)
	// ログイン（JWT 発行）
	r.POST("/api/auth/login", authH.Login)

	// 認証必須のルート
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired())
	{
		// 企業プロファイル
		api.GET("/company", companyH.Get)
		api.PUT("/company", companyH.Update)
		api.POST("/company/analyze", companyH.AnalyzeProfile)
		api.POST("/guidelines/analyze", companyH.AnalyzeGuidelines)

		// ポジション
		api.GET("/positions", positionH.List)
		api.POST("/positions", positionH.Create)
		api.PUT("/positions/:id", positionH.Update)
		api.DELETE("/positions/:id", positionH.Delete)

		// 学生
		api.GET("/students", studentH.List)
		api.POST("/students", studentH.Create)
		api.POST("/students/analyze", studentH.Analyze)
		api.GET("/students/:id", studentH.Get)
		api.PUT("/students/:id", studentH.Update)
		api.DELETE("/students/:id", studentH.Delete)

		// スカウト
		api.GET("/scouts", scoutH.List)
		api.POST("/scouts", scoutH.Create)
		api.POST("/scouts/generate", scoutH.Generate)
		api.GET("/scouts/:id", scoutH.Get)

		// ユーザープロフィール
		api.GET("/user/profile", authH.Profile)
		api.PUT("/user/profile", authH.UpdateProfile)
	}

	return r
}

// corsConfig はCORS設定を組み立てます。
// CORS_ALLOW_ORIGINS（カンマ区切り）未設定時はローカル開発用のオリジンを許可します。
func corsConfig() cors.Config {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ALLOW_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
