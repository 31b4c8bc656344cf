package usecase

import (
	"context"

	"scout_backend/internal/feature/company/domain/entity"
)

// CompanyRepository は会社プロファイルの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CompanyRepository interface {
	// FindByID は会社プロファイルを取得します。
	FindByID(ctx context.Context, id uint) (*entity.Company, error)

	// Update は会社プロファイルを保存し、保存後の状態を返します。
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
}

// UpdateInput は会社プロファイル更新の入力です。
// リスト型フィールドはトランスポート層で既に構造化されています。
type UpdateInput struct {
	Name                  string
	ShortName             string
	RecruiterSignature    string
	Description           string
	Features              []string
	CommonPositions       []string
	IdealCandidateBullets []string
	SelectionFlowText     string
	OfferSpeedText        string
	ScoutGuidelines       []entity.Guideline
}

// companyUsecase は会社プロファイルのビジネスロジックを実装します。
type companyUsecase struct {
	companies CompanyRepository
}

// NewCompanyUsecase はcompanyUsecaseの新しいインスタンスを生成します。
func NewCompanyUsecase(companies CompanyRepository) *companyUsecase {
	return &companyUsecase{companies: companies}
}

// Get は呼び出し元テナントの会社プロファイルを取得します。
func (u *companyUsecase) Get(ctx context.Context, companyID uint) (*entity.Company, error) {
	return u.companies.FindByID(ctx, companyID)
}

// Update は会社プロファイルを更新します。
// 空のテキスト項目はプレースホルダー文言で埋めます（署名のみ空を許容）。
func (u *companyUsecase) Update(ctx context.Context, companyID uint, in UpdateInput) (*entity.Company, error) {
	company := &entity.Company{
		ID:                    companyID,
		Name:                  orPlaceholder(in.Name),
		ShortName:             orPlaceholder(in.ShortName),
		RecruiterSignature:    in.RecruiterSignature,
		Description:           orPlaceholder(in.Description),
		Features:              in.Features,
		CommonPositions:       in.CommonPositions,
		IdealCandidateBullets: in.IdealCandidateBullets,
		SelectionFlowText:     orPlaceholder(in.SelectionFlowText),
		OfferSpeedText:        orPlaceholder(in.OfferSpeedText),
		ScoutGuidelines:       in.ScoutGuidelines,
	}
	return u.companies.Update(ctx, company)
}

func orPlaceholder(s string) string {
	if s == "" {
		return entity.PlaceholderText
	}
	return s
}
