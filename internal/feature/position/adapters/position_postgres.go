// Package adapters はpositionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"scout_backend/internal/feature/position/domain/entity"
	"scout_backend/internal/feature/position/usecase"
	"scout_backend/internal/shared/jsonfield"
)

// PositionModel は positions テーブルの永続化モデルです。
// duties / requirements は一重JSONエンコードの文字列カラムとして保存します。
type PositionModel struct {
	ID           uint   `gorm:"primaryKey"`
	CompanyID    uint   `gorm:"index;not null"`
	Name         string `gorm:"size:255;not null"`
	Summary      string `gorm:"type:text"`
	Duties       string `gorm:"type:text"`
	Requirements string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName はGORMのテーブル名を指定します。
func (PositionModel) TableName() string { return "positions" }

// positionPostgres はPositionRepositoryインターフェースのGORM実装です。
type positionPostgres struct {
	db *gorm.DB
}

// positionPostgresがPositionRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PositionRepository = (*positionPostgres)(nil)

// NewPositionRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewPositionRepository(db *gorm.DB) *positionPostgres {
	return &positionPostgres{db: db}
}

// ListByCompany はテナントのポジションを新しい順で返します。
func (r *positionPostgres) ListByCompany(ctx context.Context, companyID uint) ([]entity.Position, error) {
	var models []PositionModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.Position, 0, len(models))
	for i := range models {
		out = append(out, *toEntity(&models[i]))
	}
	return out, nil
}

// FindByID はテナント内のポジションを取得します。
// テナント外・存在しないIDはどちらも usecase.ErrPositionNotFound です。
func (r *positionPostgres) FindByID(ctx context.Context, companyID, id uint) (*entity.Position, error) {
	var m PositionModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPositionNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// Create はポジションを作成し、採番されたIDをエンティティへ書き戻します。
func (r *positionPostgres) Create(ctx context.Context, p *entity.Position) error {
	m := fromEntity(p)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

// Update はテナント内のポジションを更新します。
func (r *positionPostgres) Update(ctx context.Context, p *entity.Position) error {
	m := fromEntity(p)
	result := r.db.WithContext(ctx).Model(&PositionModel{}).
		Where("id = ? AND company_id = ?", p.ID, p.CompanyID).
		Updates(map[string]any{
			"name":         m.Name,
			"summary":      m.Summary,
			"duties":       m.Duties,
			"requirements": m.Requirements,
			"is_active":    m.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPositionNotFound
	}
	return nil
}

// Delete はテナント内のポジションを物理削除します。
// 他テナントの行には一切触れず、対象がなければ usecase.ErrPositionNotFound を返します。
func (r *positionPostgres) Delete(ctx context.Context, companyID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&PositionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPositionNotFound
	}
	return nil
}

func toEntity(m *PositionModel) *entity.Position {
	return &entity.Position{
		ID:           m.ID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		Summary:      m.Summary,
		Duties:       jsonfield.DecodeStrings(m.Duties),
		Requirements: jsonfield.DecodeStrings(m.Requirements),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(p *entity.Position) *PositionModel {
	return &PositionModel{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Name:         p.Name,
		Summary:      p.Summary,
		Duties:       jsonfield.EncodeStrings(p.Duties),
		Requirements: jsonfield.EncodeStrings(p.Requirements),
		IsActive:     p.IsActive,
	}
}
