// Package adapters はcompanyフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"scout_backend/internal/feature/company/domain/entity"
	"scout_backend/internal/feature/company/usecase"
	"scout_backend/internal/shared/jsonfield"
)

// CompanyModel は companies テーブルの永続化モデルです。
// リスト型フィールドは一重JSONエンコードの文字列カラムとして保存します。
// 読み取り時は jsonfield が過去の多重エンコードを修復します。
type CompanyModel struct {
	ID                    uint   `gorm:"primaryKey"`
	Name                  string `gorm:"size:255;not null"`
	ShortName             string `gorm:"size:255"`
	RecruiterSignature    string `gorm:"size:255"`
	Description           string `gorm:"type:text"`
	Features              string `gorm:"type:text"`
	CommonPositions       string `gorm:"type:text"`
	IdealCandidateBullets string `gorm:"type:text"`
	SelectionFlowText     string `gorm:"type:text"`
	OfferSpeedText        string `gorm:"type:text"`
	ScoutGuidelines       string `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName はGORMのテーブル名を指定します。
func (CompanyModel) TableName() string { return "companies" }

// companyPostgres はCompanyRepositoryインターフェースのGORM実装です。
type companyPostgres struct {
	db *gorm.DB
}

// companyPostgresがCompanyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CompanyRepository = (*companyPostgres)(nil)

// NewCompanyRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewCompanyRepository(db *gorm.DB) *companyPostgres {
	return &companyPostgres{db: db}
}

// FindByID は会社プロファイルを取得します。
// 存在しない場合は usecase.ErrCompanyNotFound を返します。
func (r *companyPostgres) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var m CompanyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return ToEntity(&m), nil
}

// Update は会社プロファイルを保存し、保存後の状態を読み直して返します。
func (r *companyPostgres) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	m := FromEntity(company)
	result := r.db.WithContext(ctx).Model(&CompanyModel{}).Where("id = ?", company.ID).Updates(map[string]any{
		"name":                    m.Name,
		"short_name":              m.ShortName,
		"recruiter_signature":     m.RecruiterSignature,
		"description":             m.Description,
		"features":                m.Features,
		"common_positions":        m.CommonPositions,
		"ideal_candidate_bullets": m.IdealCandidateBullets,
		"selection_flow_text":     m.SelectionFlowText,
		"offer_speed_text":        m.OfferSpeedText,
		"scout_guidelines":        m.ScoutGuidelines,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, usecase.ErrCompanyNotFound
	}
	return r.FindByID(ctx, company.ID)
}

// ToEntity は永続化モデルをドメインエンティティへ変換します。
// 全リスト型フィールドがここで正規化され、呼び出し側に文字列が漏れることはありません。
func ToEntity(m *CompanyModel) *entity.Company {
	return &entity.Company{
		ID:                    m.ID,
		Name:                  m.Name,
		ShortName:             m.ShortName,
		RecruiterSignature:    m.RecruiterSignature,
		Description:           m.Description,
		Features:              jsonfield.DecodeStrings(m.Features),
		CommonPositions:       jsonfield.DecodeStrings(m.CommonPositions),
		IdealCandidateBullets: jsonfield.DecodeStrings(m.IdealCandidateBullets),
		SelectionFlowText:     m.SelectionFlowText,
		OfferSpeedText:        m.OfferSpeedText,
		ScoutGuidelines:       decodeGuidelines(m.ScoutGuidelines),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// FromEntity はドメインエンティティを永続化モデルへ変換します。
// リスト型フィールドはちょうど一重のJSONエンコードになります。
func FromEntity(c *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:                    c.ID,
		Name:                  c.Name,
		ShortName:             c.ShortName,
		RecruiterSignature:    c.RecruiterSignature,
		Description:           c.Description,
		Features:              jsonfield.EncodeStrings(c.Features),
		CommonPositions:       jsonfield.EncodeStrings(c.CommonPositions),
		IdealCandidateBullets: jsonfield.EncodeStrings(c.IdealCandidateBullets),
		SelectionFlowText:     c.SelectionFlowText,
		OfferSpeedText:        c.OfferSpeedText,
		ScoutGuidelines:       encodeGuidelines(c.ScoutGuidelines),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// decodeGuidelines は保存されたガイドラインを正準形のリストへ復元します。
// 正準形は [{category, content}] のリストですが、初期データ世代が残した
// {mindset: [...], structure: [...], ngWords: [...]} 形式のオブジェクトも読めるようにします。
func decodeGuidelines(stored string) []entity.Guideline {
	out := []entity.Guideline{}
	switch v := jsonfield.EnsureValid(stored).(type) {
	case []any:
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			category, _ := m["category"].(string)
			content, _ := m["content"].(string)
			if category == "" || content == "" {
				continue
			}
			out = append(out, entity.Guideline{Category: category, Content: content})
		}
	case map[string]any:
		for _, category := range []string{entity.GuidelineMindset, entity.GuidelineStructure, entity.GuidelineNGWords} {
			items, ok := v[category].([]any)
			if !ok {
				continue
			}
			for _, item := range items {
				if s, ok := item.(string); ok && s != "" {
					out = append(out, entity.Guideline{Category: category, Content: s})
				}
			}
		}
	}
	return out
}

// encodeGuidelines はガイドラインを一重JSONの正準形で書き出します。
func encodeGuidelines(guidelines []entity.Guideline) string {
	if guidelines == nil {
		guidelines = []entity.Guideline{}
	}
	b, _ := json.Marshal(guidelines)
	return string(b)
}
