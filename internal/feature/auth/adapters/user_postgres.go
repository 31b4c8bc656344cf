// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scout_backend/internal/feature/auth/domain/entity"
	"scout_backend/internal/feature/auth/usecase"
	companyadapters "scout_backend/internal/feature/company/adapters"
	companyentity "scout_backend/internal/feature/company/domain/entity"
)

// userPostgres はUserRepositoryインターフェースのGORM実装です。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// CreateWithCompany はプレースホルダー会社と初期ユーザーを単一トランザクションで作成します。
// どちらかの挿入が失敗した場合は両方ロールバックされます。
func (r *userPostgres) CreateWithCompany(ctx context.Context, u *entity.User, company *companyentity.Company) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := companyadapters.FromEntity(company)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		u.CompanyID = m.ID
		return tx.Create(u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update はユーザーの名前とパスワードハッシュを保存します。
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", u.ID).Updates(map[string]any{
		"name":          u.Name,
		"password_hash": u.PasswordHash,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
