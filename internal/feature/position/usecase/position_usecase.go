// Package usecase はpositionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"scout_backend/internal/feature/position/domain/entity"
)

// ErrPositionNotFound は、ポジションが存在しないか呼び出し元テナントの所有でない場合に返されます。
// 他テナントの行の存在を漏らさないため、両者を区別しません。
var ErrPositionNotFound = errors.New("position not found")

// PositionRepository はポジションの永続化層を抽象化します。
// 全操作が companyID でスコープされます。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PositionRepository interface {
	// ListByCompany はテナントのポジションを新しい順で返します。
	ListByCompany(ctx context.Context, companyID uint) ([]entity.Position, error)

	// FindByID はテナント内のポジションを取得します。
	FindByID(ctx context.Context, companyID, id uint) (*entity.Position, error)

	// Create はポジションを作成します。
	Create(ctx context.Context, position *entity.Position) error

	// Update はテナント内のポジションを更新します。
	Update(ctx context.Context, position *entity.Position) error

	// Delete はテナント内のポジションを物理削除します。
	Delete(ctx context.Context, companyID, id uint) error
}

// CreateInput はポジション作成の入力です。
type CreateInput struct {
	Name         string
	Summary      string
	Duties       []string
	Requirements []string
}

// UpdateInput はポジション更新の入力です。
// IsActive が nil の場合は現在の値を維持します。
type UpdateInput struct {
	Name         string
	Summary      string
	Duties       []string
	Requirements []string
	IsActive     *bool
}

// positionUsecase はポジションCRUDのビジネスロジックを実装します。
type positionUsecase struct {
	positions PositionRepository
}

// NewPositionUsecase はpositionUsecaseの新しいインスタンスを生成します。
func NewPositionUsecase(positions PositionRepository) *positionUsecase {
	return &positionUsecase{positions: positions}
}

// List はテナントのポジション一覧を返します。
func (u *positionUsecase) List(ctx context.Context, companyID uint) ([]entity.Position, error) {
	return u.positions.ListByCompany(ctx, companyID)
}

// Create は新規ポジションを作成します。新規作成時は常に募集中になります。
func (u *positionUsecase) Create(ctx context.Context, companyID uint, in CreateInput) (*entity.Position, error) {
	position := &entity.Position{
		CompanyID:    companyID,
		Name:         in.Name,
		Summary:      in.Summary,
		Duties:       in.Duties,
		Requirements: in.Requirements,
		IsActive:     true,
	}
	if err := u.positions.Create(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// Update は既存ポジションを更新します。テナント外のIDは ErrPositionNotFound になります。
func (u *positionUsecase) Update(ctx context.Context, companyID, id uint, in UpdateInput) (*entity.Position, error) {
	existing, err := u.positions.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Summary = in.Summary
	existing.Duties = in.Duties
	existing.Requirements = in.Requirements
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}

	if err := u.positions.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete はポジションを物理削除します。テナント外のIDは ErrPositionNotFound になります。
func (u *positionUsecase) Delete(ctx context.Context, companyID, id uint) error {
	return u.positions.Delete(ctx, companyID, id)
}
