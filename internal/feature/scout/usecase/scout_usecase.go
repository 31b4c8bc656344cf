// Package usecase はscoutフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"scout_backend/internal/feature/scout/domain/entity"
)

// ErrScoutNotFound は、スカウトが存在しないか呼び出し元テナントの所有でない場合に返されます。
var ErrScoutNotFound = errors.New("scout not found")

// DefaultSubject は件名未指定時に補われる件名です。
const DefaultSubject = "スカウトメール"

// ScoutRepository はスカウトの永続化層を抽象化します。全操作が companyID でスコープされます。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ScoutRepository interface {
	// ListByCompany はテナントのスカウトを新しい順で、参照先の学生名・大学名・職種名を合成して返します。
	ListByCompany(ctx context.Context, companyID uint) ([]entity.ListItem, error)

	// FindByID はテナント内のスカウトを取得します。
	FindByID(ctx context.Context, companyID, id uint) (*entity.ListItem, error)

	// Create はスカウトを保存します。
	Create(ctx context.Context, scout *entity.Scout) error
}

// StudentToucher は学生の最終スカウト日時の更新を抽象化します。
// studentフィーチャーのリポジトリが実装します。
type StudentToucher interface {
	TouchLastScoutedAt(ctx context.Context, companyID, id uint, at time.Time) error
}

// CreateInput はスカウト保存の入力です。
type CreateInput struct {
	StudentID  uint
	PositionID uint
	Subject    string
	Body       string
	Status     string
}

// scoutUsecase はスカウト履歴のビジネスロジックを実装します。
type scoutUsecase struct {
	scouts   ScoutRepository
	students StudentToucher
}

// NewScoutUsecase はscoutUsecaseの新しいインスタンスを生成します。
func NewScoutUsecase(scouts ScoutRepository, students StudentToucher) *scoutUsecase {
	return &scoutUsecase{scouts: scouts, students: students}
}

// List はテナントのスカウト履歴を新しい順で返します。
func (u *scoutUsecase) List(ctx context.Context, companyID uint) ([]entity.ListItem, error) {
	return u.scouts.ListByCompany(ctx, companyID)
}

// Get はスカウト1件を参照先の名前付きで取得します。
func (u *scoutUsecase) Get(ctx context.Context, companyID, id uint) (*entity.ListItem, error) {
	return u.scouts.FindByID(ctx, companyID, id)
}

// Create はスカウトを保存し、保存成功の直後に学生の最終スカウト日時を更新します。
// 日時更新はスカウト保存と同一トランザクションではありません。失敗してもスカウト保存は取り消されず、
// ログに残すだけにします。
func (u *scoutUsecase) Create(ctx context.Context, companyID uint, in CreateInput) (*entity.Scout, error) {
	scout := &entity.Scout{
		CompanyID:  companyID,
		StudentID:  in.StudentID,
		PositionID: in.PositionID,
		Subject:    in.Subject,
		Body:       in.Body,
		Status:     in.Status,
	}
	if scout.Subject == "" {
		scout.Subject = DefaultSubject
	}
	if scout.Status == "" {
		scout.Status = entity.StatusDraft
	}
	if err := u.scouts.Create(ctx, scout); err != nil {
		return nil, err
	}
	if err := u.students.TouchLastScoutedAt(ctx, companyID, in.StudentID, time.Now()); err != nil {
		slog.Warn("failed to update last scouted at", "error", err, "company_id", companyID, "student_id", in.StudentID)
	}
	return scout, nil
}
