package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scout_backend/internal/platform/gemini"
)

const (
	// maxAnalyzeTextLength は解析対象テキストの最大文字数です。超過分は切り捨てます。
	maxAnalyzeTextLength = 50000

	// extractTemperature は構造化抽出用の低温設定です。
	extractTemperature = 0.1
)

// studentAnalysisPrompt は求人媒体からコピーされたテキストを構造化するプロンプトです。
const studentAnalysisPrompt = `
あなたは優秀な採用アシスタントです。
以下のテキストは、求人媒体や管理画面からコピー＆ペーストされた学生の情報です。
このテキストから、スカウト作成に必要な「学生プロフィール」と「エピソード（ガクチカ）」を抽出し、JSON形式で出力してください。

【抽出項目とルール】
- name: 氏名
- nameKana: 氏名のフリガナ（あれば）
- university: 大学名
- faculty: 学部・学科・専攻
- strengthTags: 学生の強み（単語の配列）
- valueText: 大事にしている価値観や将来の目標
- notes: 面談メモ、特記事項、その他スカウトに関係しそうな全ての補足情報
- episodes: 活動実績（ガクチカ）の配列

【制約事項】
- JSON形式のみを出力してください。Markdownブロックや余計な解説は一切不要です。
- 該当する情報がない項目は、空配列 [] または空文字 "" にしてください。
- 文脈から明らかに学生本人の情報ではないものは無視してください。

【出力JSONフォーマット】
{
  "name": "",
  "nameKana": "",
  "university": "",
  "faculty": "",
  "strengthTags": [],
  "valueText": "",
  "notes": "",
  "episodes": [
    {
      "title": "エピソードのタイトル（簡潔に）",
      "detail": "取り組みの詳細",
      "achievementText": "実績・数値"
    }
  ]
}

【解析対象テキスト】
%s
`

// TextGenerator は外部の生成モデル呼び出しを抽象化します。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// ErrEmptyText は解析対象テキストが空の場合に返されます。
var ErrEmptyText = errors.New("text is required")

// EpisodeDraft は抽出されたエピソード案です。
type EpisodeDraft struct {
	Title           string `json:"title"`
	Detail          string `json:"detail"`
	AchievementText string `json:"achievementText"`
}

// StudentDraft は抽出された学生プロフィール案です。
type StudentDraft struct {
	Name         string         `json:"name"`
	NameKana     string         `json:"nameKana"`
	University   string         `json:"university"`
	Faculty      string         `json:"faculty"`
	StrengthTags []string       `json:"strengthTags"`
	ValueText    string         `json:"valueText"`
	Notes        string         `json:"notes"`
	Episodes     []EpisodeDraft `json:"episodes"`
}

// analyzeUsecase は学生テキストの構造化抽出を実装します。
type analyzeUsecase struct {
	generator TextGenerator
}

// NewAnalyzeUsecase はanalyzeUsecaseの新しいインスタンスを生成します。
func NewAnalyzeUsecase(generator TextGenerator) *analyzeUsecase {
	return &analyzeUsecase{generator: generator}
}

// Analyze は貼り付けテキストから学生プロフィール案を抽出します。
// モデル応答からJSONを抽出できない場合は gemini.ErrInvalidOutput を伝播します。
func (u *analyzeUsecase) Analyze(ctx context.Context, text string) (*StudentDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	runes := []rune(text)
	if len(runes) > maxAnalyzeTextLength {
		text = string(runes[:maxAnalyzeTextLength])
	}
	prompt := fmt.Sprintf(studentAnalysisPrompt, text)
	raw, err := u.generator.Generate(ctx, prompt, extractTemperature)
	if err != nil {
		return nil, fmt.Errorf("student analysis failed: %w", err)
	}
	draft, err := gemini.ExtractJSON[StudentDraft](raw)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}
