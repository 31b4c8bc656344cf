package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scout_backend/internal/platform/gemini"
)

// mockTextGenerator はテスト用のTextGeneratorモック実装です。
type mockTextGenerator struct {
	generateFn func(ctx context.Context, prompt string, temperature float32) (string, error)
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt, temperature)
	}
	return "", nil
}

// TestAnalyzeUsecase_AnalyzeProfile は企業プロファイル抽出の各種シナリオをテーブル駆動テストで検証します。
func TestAnalyzeUsecase_AnalyzeProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		response   string
		genErr     error
		wantErr    error
		checkDraft func(t *testing.T, d *ProfileDraft)
	}{
		{
			name:     "success: plain JSON",
			text:     "会社説明資料のテキスト",
			response: `{"name":"株式会社テスト","shortName":"テスト社","features":["フルリモート"]}`,
			checkDraft: func(t *testing.T, d *ProfileDraft) {
				assert.Equal(t, "株式会社テスト", d.Name)
				assert.Equal(t, "テスト社", d.ShortName)
				assert.Equal(t, []string{"フルリモート"}, d.Features)
			},
		},
		{
			name:     "success: JSON wrapped in code fences",
			text:     "会社説明資料のテキスト",
			response: "```json\n{\"name\":\"株式会社テスト\"}\n```",
			checkDraft: func(t *testing.T, d *ProfileDraft) {
				assert.Equal(t, "株式会社テスト", d.Name)
			},
		},
		{
			name:    "failure: empty text",
			text:    "   ",
			wantErr: ErrEmptyText,
		},
		{
			name:     "failure: no JSON in response",
			text:     "会社説明資料のテキスト",
			response: "申し訳ありませんが、抽出できませんでした。",
			wantErr:  gemini.ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &mockTextGenerator{
				generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
					assert.InDelta(t, 0.1, temperature, 0.001, "extraction should use low temperature")
					assert.Contains(t, prompt, tt.text)
					return tt.response, tt.genErr
				},
			}

			uc := NewAnalyzeUsecase(gen)
			draft, err := uc.AnalyzeProfile(context.Background(), tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkDraft(t, draft)
		})
	}
}

// TestAnalyzeUsecase_AnalyzeProfile_GeneratorError は生成失敗時にエラーがラップされて返ることを検証します。
func TestAnalyzeUsecase_AnalyzeProfile_GeneratorError(t *testing.T) {
	t.Parallel()

	genErr := errors.New("model unavailable")
	gen := &mockTextGenerator{
		generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
			return "", genErr
		},
	}

	uc := NewAnalyzeUsecase(gen)
	_, err := uc.AnalyzeProfile(context.Background(), "テキスト")

	assert.ErrorIs(t, err, genErr)
}

// TestAnalyzeUsecase_AnalyzeProfile_TruncatesLongText は上限を超えるテキストが切り詰められることを検証します。
func TestAnalyzeUsecase_AnalyzeProfile_TruncatesLongText(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("あ", maxAnalyzeTextLength+100)

	gen := &mockTextGenerator{
		generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
			assert.NotContains(t, prompt, long, "prompt should not contain the full untruncated text")
			assert.Contains(t, prompt, strings.Repeat("あ", maxAnalyzeTextLength))
			return `{"name":"株式会社テスト"}`, nil
		},
	}

	uc := NewAnalyzeUsecase(gen)
	_, err := uc.AnalyzeProfile(context.Background(), long)

	require.NoError(t, err)
}

// TestAnalyzeUsecase_AnalyzeGuidelines はガイドライン抽出の各種シナリオをテーブル駆動テストで検証します。
func TestAnalyzeUsecase_AnalyzeGuidelines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		response   string
		wantErr    error
		checkDraft func(t *testing.T, d *GuidelineDraft)
	}{
		{
			name:     "success: full extraction",
			text:     "スカウトノウハウ資料",
			response: `前置きです。{"mindset":["学生目線で書く"],"structure":["結論から書く"],"ngWords":["優秀"]}以上です。`,
			checkDraft: func(t *testing.T, d *GuidelineDraft) {
				assert.Equal(t, []string{"学生目線で書く"}, d.Mindset)
				assert.Equal(t, []string{"結論から書く"}, d.Structure)
				assert.Equal(t, []string{"優秀"}, d.NGWords)
			},
		},
		{
			name:    "failure: empty text",
			text:    "",
			wantErr: ErrEmptyText,
		},
		{
			name:     "failure: unparsable response",
			text:     "スカウトノウハウ資料",
			response: "抽出できません",
			wantErr:  gemini.ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &mockTextGenerator{
				generateFn: func(ctx context.Context, prompt string, temperature float32) (string, error) {
					return tt.response, nil
				},
			}

			uc := NewAnalyzeUsecase(gen)
			draft, err := uc.AnalyzeGuidelines(context.Background(), tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkDraft(t, draft)
		})
	}
}
