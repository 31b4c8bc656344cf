// Package usecase はstudentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"scout_backend/internal/feature/student/domain/entity"
)

// ErrStudentNotFound は、学生が存在しないか呼び出し元テナントの所有でない場合に返されます。
// 他テナントの行の存在を漏らさないため、両者を区別しません。
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository は学生とエピソードの永続化層を抽象化します。
// 全操作が companyID でスコープされます。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StudentRepository interface {
	// ListByCompany はテナントの学生を新しい順で返します。
	// query が空でない場合、氏名または大学名の部分一致で絞り込みます。
	ListByCompany(ctx context.Context, companyID uint, query string) ([]entity.Student, error)

	// FindByID はテナント内の学生をエピソード付きで取得します。
	FindByID(ctx context.Context, companyID, id uint) (*entity.Student, error)

	// Create は学生とエピソードを単一トランザクションで作成します。
	Create(ctx context.Context, student *entity.Student) error

	// Update は学生情報を更新し、エピソード集合を丸ごと入れ替えます。
	// 削除と再作成は単一トランザクションで行われ、途中失敗時は元の集合が残ります。
	Update(ctx context.Context, student *entity.Student) error

	// Delete はテナント内の学生を所属エピソードごと物理削除します。
	Delete(ctx context.Context, companyID, id uint) error
}

// EpisodeInput はエピソード1件の入力です。IDは受け取りません（毎回再採番されるため）。
type EpisodeInput struct {
	Title           string
	Detail          string
	AbstractComment string
	AchievementText string
	Tags            []string
}

// Input は学生の作成・更新共通の入力です。
type Input struct {
	Name         string
	NameKana     string
	University   string
	Faculty      string
	Notes        string
	StrengthTags []string
	ValueText    string
	Episodes     []EpisodeInput
}

// studentUsecase は学生CRUDのビジネスロジックを実装します。
type studentUsecase struct {
	students StudentRepository
}

// NewStudentUsecase はstudentUsecaseの新しいインスタンスを生成します。
func NewStudentUsecase(students StudentRepository) *studentUsecase {
	return &studentUsecase{students: students}
}

// List はテナントの学生一覧を返します。
func (u *studentUsecase) List(ctx context.Context, companyID uint, query string) ([]entity.Student, error) {
	return u.students.ListByCompany(ctx, companyID, query)
}

// Get は学生をエピソード付きで取得します。
func (u *studentUsecase) Get(ctx context.Context, companyID, id uint) (*entity.Student, error) {
	return u.students.FindByID(ctx, companyID, id)
}

// Create は学生とエピソードを同時に登録します。
func (u *studentUsecase) Create(ctx context.Context, companyID uint, in Input) (*entity.Student, error) {
	student := toEntity(companyID, in)
	if err := u.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update は学生情報を更新し、エピソード集合を入れ替えます。
// エピソードのIDは編集をまたいで保存されません。
func (u *studentUsecase) Update(ctx context.Context, companyID, id uint, in Input) (*entity.Student, error) {
	// 先にテナント内の存在確認をして、他社の学生を黙って書き換えないようにする
	if _, err := u.students.FindByID(ctx, companyID, id); err != nil {
		return nil, err
	}
	student := toEntity(companyID, in)
	student.ID = id
	if err := u.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return u.students.FindByID(ctx, companyID, id)
}

// Delete は学生を所属エピソードごと削除します。
func (u *studentUsecase) Delete(ctx context.Context, companyID, id uint) error {
	return u.students.Delete(ctx, companyID, id)
}

func toEntity(companyID uint, in Input) *entity.Student {
	episodes := make([]entity.Episode, 0, len(in.Episodes))
	for _, ep := range in.Episodes {
		episodes = append(episodes, entity.Episode{
			Title:           ep.Title,
			Detail:          ep.Detail,
			AbstractComment: ep.AbstractComment,
			AchievementText: ep.AchievementText,
			Tags:            ep.Tags,
		})
	}
	return &entity.Student{
		CompanyID:    companyID,
		Name:         in.Name,
		NameKana:     in.NameKana,
		University:   in.University,
		Faculty:      in.Faculty,
		Notes:        in.Notes,
		StrengthTags: in.StrengthTags,
		ValueText:    in.ValueText,
		Episodes:     episodes,
	}
}
