// Package db はGORMによるデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scout_backend/internal/feature/auth/domain/entity"
	companyadapters "scout_backend/internal/feature/company/adapters"
	positionadapters "scout_backend/internal/feature/position/adapters"
	scoutadapters "scout_backend/internal/feature/scout/adapters"
	studentadapters "scout_backend/internal/feature/student/adapters"
)

// Config はデータベース接続設定です。環境変数から組み立てます。
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LoadConfigFromEnv は環境変数から接続設定を読み込みます。
func LoadConfigFromEnv() Config {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  sslmode,
	}
}

// BuildDSN はPostgreSQL接続文字列を組み立てます。
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Asia/Tokyo",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// OpenPostgres はPostgreSQLドライバで接続を開きます。
// TranslateErrorを有効にして、一意制約違反をgorm.ErrDuplicatedKeyへ変換します。
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// ConnectWithRetry は接続が確立するまで3秒間隔でリトライします。
// timeout を過ぎても接続できない場合はエラーを返します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定で接続し、RUN_MIGRATIONS=true のときスキーマを移行します。
// 接続・移行に失敗した場合はプロセスを終了します。
func OpenDB() *gorm.DB {
	db, err := ConnectWithRetry(BuildDSN(LoadConfigFromEnv()), 60*time.Second, OpenPostgres)
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&entity.User{},
			&companyadapters.CompanyModel{},
			&positionadapters.PositionModel{},
			&studentadapters.StudentModel{},
			&studentadapters.EpisodeModel{},
			&scoutadapters.ScoutModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
