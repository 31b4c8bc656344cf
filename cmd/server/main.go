package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"scout_backend/internal/app/router"
	authadapters "scout_backend/internal/feature/auth/adapters"
	authhandler "scout_backend/internal/feature/auth/transport/handler"
	authusecase "scout_backend/internal/feature/auth/usecase"
	companyadapters "scout_backend/internal/feature/company/adapters"
	companyhandler "scout_backend/internal/feature/company/transport/handler"
	companyusecase "scout_backend/internal/feature/company/usecase"
	positionadapters "scout_backend/internal/feature/position/adapters"
	positionhandler "scout_backend/internal/feature/position/transport/handler"
	positionusecase "scout_backend/internal/feature/position/usecase"
	scoutadapters "scout_backend/internal/feature/scout/adapters"
	scouthandler "scout_backend/internal/feature/scout/transport/handler"
	scoutusecase "scout_backend/internal/feature/scout/usecase"
	studentadapters "scout_backend/internal/feature/student/adapters"
	studenthandler "scout_backend/internal/feature/student/transport/handler"
	studentusecase "scout_backend/internal/feature/student/usecase"
	"scout_backend/internal/platform/cache"
	platformdb "scout_backend/internal/platform/db"
	"scout_backend/internal/platform/gemini"
	platformjwt "scout_backend/internal/platform/jwt"
	platformredis "scout_backend/internal/platform/redis"
)

func main() {
	// .env はローカル開発用。存在しなくてもよい
	_ = godotenv.Load()

	ctx := context.Background()

	// db
	db := platformdb.OpenDB()

	// Redis（任意。接続できなければキャッシュなしで稼働する）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Gemini
	gemClient, err := gemini.NewClient(ctx)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(platformjwt.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := platformjwt.NewGenerator(secret, 24*time.Hour)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	companyRepo := companyadapters.NewCompanyRepository(db)
	positionRepo := positionadapters.NewPositionRepository(db)
	studentRepo := studentadapters.NewStudentRepository(db)
	scoutRepo := scoutadapters.NewScoutRepository(db)

	// 企業プロファイルはRedisキャッシュでラップ
	cachedCompanyRepo := cache.NewCachingCompanyRepository(rdb, 5*time.Minute, companyRepo, "company")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	companyUC := companyusecase.NewCompanyUsecase(cachedCompanyRepo)
	companyAnalyzeUC := companyusecase.NewAnalyzeUsecase(gemClient)
	positionUC := positionusecase.NewPositionUsecase(positionRepo)
	studentUC := studentusecase.NewStudentUsecase(studentRepo)
	studentAnalyzeUC := studentusecase.NewAnalyzeUsecase(gemClient)
	scoutUC := scoutusecase.NewScoutUsecase(scoutRepo, studentRepo)
	generateUC := scoutusecase.NewGenerateUsecase(cachedCompanyRepo, studentRepo, positionRepo, gemClient)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	companyH := companyhandler.NewCompanyHandler(companyUC, companyAnalyzeUC)
	positionH := positionhandler.NewPositionHandler(positionUC)
	studentH := studenthandler.NewStudentHandler(studentUC, studentAnalyzeUC)
	scoutH := scouthandler.NewScoutHandler(scoutUC, generateUC)

	// ルータ生成
	r := router.NewRouter(authH, companyH, positionH, studentH, scoutH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
