package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyentity "scout_backend/internal/feature/company/domain/entity"
	positionentity "scout_backend/internal/feature/position/domain/entity"
	"scout_backend/internal/feature/scout/domain/entity"
	studententity "scout_backend/internal/feature/student/domain/entity"
)

// mockScoutRepository はテスト用のScoutRepositoryモック実装です。
type mockScoutRepository struct {
	listFn   func(ctx context.Context, companyID uint) ([]entity.ListItem, error)
	findFn   func(ctx context.Context, companyID, id uint) (*entity.ListItem, error)
	createFn func(ctx context.Context, scout *entity.Scout) error
}

func (m *mockScoutRepository) ListByCompany(ctx context.Context, companyID uint) ([]entity.ListItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockScoutRepository) FindByID(ctx context.Context, companyID, id uint) (*entity.ListItem, error) {
	if m.findFn != nil {
		return m.findFn(ctx, companyID, id)
	}
	return nil, ErrScoutNotFound
}

func (m *mockScoutRepository) Create(ctx context.Context, scout *entity.Scout) error {
	if m.createFn != nil {
		return m.createFn(ctx, scout)
	}
	return nil
}

// mockStudentToucher はテスト用のStudentToucherモック実装です。
type mockStudentToucher struct {
	touchFn func(ctx context.Context, companyID, id uint, at time.Time) error
	called  bool
}

func (m *mockStudentToucher) TouchLastScoutedAt(ctx context.Context, companyID, id uint, at time.Time) error {
	m.called = true
	if m.touchFn != nil {
		return m.touchFn(ctx, companyID, id, at)
	}
	return nil
}

// TestScoutUsecase_Create_Defaults は件名・ステータス省略時にデフォルトが補われることを検証します。
func TestScoutUsecase_Create_Defaults(t *testing.T) {
	t.Parallel()

	var saved *entity.Scout
	repo := &mockScoutRepository{
		createFn: func(ctx context.Context, scout *entity.Scout) error {
			scout.ID = 1
			saved = scout
			return nil
		},
	}
	toucher := &mockStudentToucher{}

	uc := NewScoutUsecase(repo, toucher)
	scout, err := uc.Create(context.Background(), 1, CreateInput{
		StudentID:  100,
		PositionID: 10,
		Body:       "本文",
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultSubject, saved.Subject)
	assert.Equal(t, entity.StatusDraft, saved.Status)
	assert.Equal(t, uint(1), scout.ID)
	assert.Equal(t, uint(1), scout.CompanyID)
}

// TestScoutUsecase_Create_TouchesLastScoutedAt は保存成功後に学生の最終スカウト日時が更新されることを検証します。
func TestScoutUsecase_Create_TouchesLastScoutedAt(t *testing.T) {
	t.Parallel()

	var touchedCompany, touchedStudent uint
	toucher := &mockStudentToucher{
		touchFn: func(ctx context.Context, companyID, id uint, at time.Time) error {
			touchedCompany = companyID
			touchedStudent = id
			return nil
		},
	}

	uc := NewScoutUsecase(&mockScoutRepository{}, toucher)
	_, err := uc.Create(context.Background(), 1, CreateInput{
		StudentID:  100,
		PositionID: 10,
		Subject:    "件名",
		Body:       "本文",
		Status:     entity.StatusSent,
	})

	require.NoError(t, err)
	assert.True(t, toucher.called)
	assert.Equal(t, uint(1), touchedCompany)
	assert.Equal(t, uint(100), touchedStudent)
}

// TestScoutUsecase_Create_TouchFailureDoesNotFail は日時更新の失敗がスカウト保存結果に影響しないことを検証します。
func TestScoutUsecase_Create_TouchFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	toucher := &mockStudentToucher{
		touchFn: func(ctx context.Context, companyID, id uint, at time.Time) error {
			return errors.New("touch failed")
		},
	}

	uc := NewScoutUsecase(&mockScoutRepository{}, toucher)
	scout, err := uc.Create(context.Background(), 1, CreateInput{
		StudentID:  100,
		PositionID: 10,
		Body:       "本文",
	})

	require.NoError(t, err)
	assert.NotNil(t, scout)
}

// TestScoutUsecase_Create_RepoError は保存失敗時にエラーが伝播され、日時更新が行われないことを検証します。
func TestScoutUsecase_Create_RepoError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("insert failed")
	repo := &mockScoutRepository{
		createFn: func(ctx context.Context, scout *entity.Scout) error {
			return expectedErr
		},
	}
	toucher := &mockStudentToucher{}

	uc := NewScoutUsecase(repo, toucher)
	_, err := uc.Create(context.Background(), 1, CreateInput{StudentID: 100, PositionID: 10, Body: "本文"})

	assert.ErrorIs(t, err, expectedErr)
	assert.False(t, toucher.called)
}

// mockCompanyReader / mockStudentReader / mockPositionReader / mockTextGenerator は生成ユースケース用のモックです。
type mockCompanyReader struct {
	company *companyentity.Company
	err     error
}

func (m *mockCompanyReader) FindByID(ctx context.Context, id uint) (*companyentity.Company, error) {
	return m.company, m.err
}

type mockStudentReader struct {
	student *studententity.Student
	err     error
}

func (m *mockStudentReader) FindByID(ctx context.Context, companyID, id uint) (*studententity.Student, error) {
	return m.student, m.err
}

type mockPositionReader struct {
	position *positionentity.Position
	err      error
}

func (m *mockPositionReader) FindByID(ctx context.Context, companyID, id uint) (*positionentity.Position, error) {
	return m.position, m.err
}

type mockTextGenerator struct {
	generateFn func(ctx context.Context, prompt string, temperature float32) (string, error)
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt, temperature)
	}
	return "", nil
}

// TestGenerateUsecase_Generate は保存済みデータからドラフトが生成されることを検証します。
func TestGenerateUsecase_Generate(t *testing.T) {
	t.Parallel()

	var capturedPrompt string
	var capturedTemp float32
	generator := &mockTextGenerator{
		generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
			capturedPrompt = prompt
			capturedTemp = temperature
			return "生成されたスカウト本文", nil
		},
	}

	uc := NewGenerateUsecase(
		&mockCompanyReader{company: testCompany()},
		&mockStudentReader{student: testStudent()},
		&mockPositionReader{position: testPosition()},
		generator,
	)

	draft, err := uc.Generate(context.Background(), 1, 100, 10)

	require.NoError(t, err)
	assert.Equal(t, "生成されたスカウト本文", draft.Content)
	assert.Equal(t, "田中太郎", draft.StudentName)
	assert.Equal(t, "バックエンドエンジニア", draft.PositionName)
	assert.Contains(t, capturedPrompt, "会社名: 株式会社テスト")
	assert.InDelta(t, 0.7, capturedTemp, 0.001)
}

// TestGenerateUsecase_Generate_StudentNotFound は学生が見つからない場合にエラーがそのまま返ることを検証します。
func TestGenerateUsecase_Generate_StudentNotFound(t *testing.T) {
	t.Parallel()

	notFound := errors.New("student not found")
	uc := NewGenerateUsecase(
		&mockCompanyReader{company: testCompany()},
		&mockStudentReader{err: notFound},
		&mockPositionReader{position: testPosition()},
		&mockTextGenerator{},
	)

	_, err := uc.Generate(context.Background(), 1, 999, 10)

	assert.ErrorIs(t, err, notFound)
}

// TestGenerateUsecase_Generate_GeneratorError は生成失敗時にエラーがラップされて返ることを検証します。
func TestGenerateUsecase_Generate_GeneratorError(t *testing.T) {
	t.Parallel()

	genErr := errors.New("model unavailable")
	uc := NewGenerateUsecase(
		&mockCompanyReader{company: testCompany()},
		&mockStudentReader{student: testStudent()},
		&mockPositionReader{position: testPosition()},
		&mockTextGenerator{
			generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
				return "", genErr
			},
		},
	)

	_, err := uc.Generate(context.Background(), 1, 100, 10)

	assert.ErrorIs(t, err, genErr)
}
