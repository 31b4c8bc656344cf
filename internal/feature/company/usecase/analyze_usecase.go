package usecase

import (
	"context"
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

// profileAnalysisPrompt は企業資料テキストからプロファイルを抽出するプロンプトです。
const profileAnalysisPrompt = `
あなたは企業の採用コンサルタントです。提供された資料テキストから企業プロファイルを抽出し、JSON形式で出力してください。
Markdownタグや解説は含めず、純粋なJSONのみを返してください。

【抽出項目】
- name: 正式な会社名
- shortName: 会社名の略称（例：〇〇社、〇〇など。文章内で自然に使える形式）
- description: 300文字程度の紹介文
- features: 特徴（最大5つの配列）
- commonPositions: 募集職種（配列）
- idealCandidateBullets: 求める人物像（配列）
- selectionFlowText: 選考フローに関する記述

【資料テキスト】
%s
`

// guidelineAnalysisPrompt はノウハウ資料からガイドラインを抽出するプロンプトです。
const guidelineAnalysisPrompt = `
あなたは優秀な採用・広報コンサルタントです。提供された資料（スカウト作成のノウハウやガイドライン、研修資料）から、スカウト文を作成する際に役立つ情報を抽出し、以下のJSON形式で整理してください。

【抽出ルール】
1. mindset: スカウトを送る際の「心構え」「スタンス」「学生に対する姿勢」などをリストアップしてください。
2. structure: 文章の「構成」「具体的なテクニック」「盛り込むべき要素」などをリストアップしてください。
3. ngWords: 「使ってはいけない言葉」「避けるべき表現」「注意点」などをリストアップしてください。

Markdownタグや解説は含めず、純粋なJSONのみを返してください。
値はすべて文字列の配列（string[]）にしてください。

【出力フォーマット】
{
  "mindset": ["心構え1", "心構え2"],
  "structure": ["構成ルール1", "構成ルール2"],
  "ngWords": ["NGワード1", "注意点1"]
}

【対象資料】
%s
`

// TextGenerator は外部の生成モデル呼び出しを抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type TextGenerator interface {
	// Generate はプロンプトからテキストを生成します。
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// ProfileDraft は資料テキストから抽出された会社プロファイル案です。
type ProfileDraft struct {
	Name                  string   `json:"name"`
	ShortName             string   `json:"shortName"`
	Description           string   `json:"description"`
	Features              []string `json:"features"`
	CommonPositions       []string `json:"commonPositions"`
	IdealCandidateBullets []string `json:"idealCandidateBullets"`
	SelectionFlowText     string   `json:"selectionFlowText"`
}

// GuidelineDraft は資料テキストから抽出されたガイドライン案です。
type GuidelineDraft struct {
	Mindset   []string `json:"mindset"`
	Structure []string `json:"structure"`
	NGWords   []string `json:"ngWords"`
}

// analyzeUsecase は生成モデルによる構造化抽出を実装します。
type analyzeUsecase struct {
	generator TextGenerator
}

// NewAnalyzeUsecase はanalyzeUsecaseの新しいインスタンスを生成します。
func NewAnalyzeUsecase(generator TextGenerator) *analyzeUsecase {
	return &analyzeUsecase{generator: generator}
}

// AnalyzeProfile は企業資料テキストから会社プロファイル案を抽出します。
// モデル応答からJSONを抽出できない場合は gemini.ErrInvalidOutput を伝播します。
func (u *analyzeUsecase) AnalyzeProfile(ctx context.Context, text string) (*ProfileDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	prompt := fmt.Sprintf(profileAnalysisPrompt, truncate(text, maxAnalyzeTextLength))
	raw, err := u.generator.Generate(ctx, prompt, extractTemperature)
	if err != nil {
		return nil, fmt.Errorf("profile analysis failed: %w", err)
	}
	draft, err := gemini.ExtractJSON[ProfileDraft](raw)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// AnalyzeGuidelines はノウハウ資料からガイドライン案を抽出します。
func (u *analyzeUsecase) AnalyzeGuidelines(ctx context.Context, text string) (*GuidelineDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	prompt := fmt.Sprintf(guidelineAnalysisPrompt, truncate(text, maxAnalyzeTextLength))
	raw, err := u.generator.Generate(ctx, prompt, extractTemperature)
	if err != nil {
		return nil, fmt.Errorf("guideline analysis failed: %w", err)
	}
	draft, err := gemini.ExtractJSON[GuidelineDraft](raw)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// truncate はrune数でテキストを切り詰めます。
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
