package usecase

import (
	"context"
	"fmt"

	companyentity "scout_backend/internal/feature/company/domain/entity"
	positionentity "scout_backend/internal/feature/position/domain/entity"
	"scout_backend/internal/feature/scout/domain/entity"
	studententity "scout_backend/internal/feature/student/domain/entity"
)

// generateTemperature はスカウト本文生成用の温度設定です。
// 構造化抽出と違い、文章のバリエーションを出すため高めにしています。
const generateTemperature = 0.7

// CompanyReader はテナントの企業プロファイル取得を抽象化します。
type CompanyReader interface {
	FindByID(ctx context.Context, id uint) (*companyentity.Company, error)
}

// StudentReader はテナント内の学生取得（エピソード付き）を抽象化します。
type StudentReader interface {
	FindByID(ctx context.Context, companyID, id uint) (*studententity.Student, error)
}

// PositionReader はテナント内のポジション取得を抽象化します。
type PositionReader interface {
	FindByID(ctx context.Context, companyID, id uint) (*positionentity.Position, error)
}

// TextGenerator は外部の生成モデル呼び出しを抽象化します。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// generateUsecase はスカウト本文の生成を実装します。
type generateUsecase struct {
	companies CompanyReader
	students  StudentReader
	positions PositionReader
	generator TextGenerator
}

// NewGenerateUsecase はgenerateUsecaseの新しいインスタンスを生成します。
func NewGenerateUsecase(companies CompanyReader, students StudentReader, positions PositionReader, generator TextGenerator) *generateUsecase {
	return &generateUsecase{
		companies: companies,
		students:  students,
		positions: positions,
		generator: generator,
	}
}

// Generate は保存済みデータからプロンプトを組み立て、スカウト本文のドラフトを生成します。
// ドラフトは保存されません。保存は別途 Create で行います。
// 参照先が見つからない場合は各フィーチャーのNotFoundエラーをそのまま返します。
func (u *generateUsecase) Generate(ctx context.Context, companyID, studentID, positionID uint) (*entity.Draft, error) {
	company, err := u.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	student, err := u.students.FindByID(ctx, companyID, studentID)
	if err != nil {
		return nil, err
	}
	position, err := u.positions.FindByID(ctx, companyID, positionID)
	if err != nil {
		return nil, err
	}

	prompt := BuildScoutPrompt(company, position, student)
	text, err := u.generator.Generate(ctx, prompt, generateTemperature)
	if err != nil {
		return nil, fmt.Errorf("scout generation failed: %w", err)
	}
	return &entity.Draft{
		Content:      text,
		StudentName:  student.Name,
		PositionName: position.Name,
	}, nil
}
