// Package entity はcompanyフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// ガイドラインのカテゴリ。スカウト生成時にこの3区分でプロンプトへ展開されます。
const (
	GuidelineMindset   = "mindset"
	GuidelineStructure = "structure"
	GuidelineNGWords   = "ngWords"
)

// Guideline はスカウト作成に影響するユーザー定義ルール1件を表します。
type Guideline struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Company はテナントそのものである企業プロファイルを表します。
// リスト型フィールドはDB上は一重JSON文字列で保存されますが、
// ドメイン層では常に構造化された値として扱います。
type Company struct {
	ID                    uint
	Name                  string
	ShortName             string
	RecruiterSignature    string
	Description           string
	Features              []string
	CommonPositions       []string
	IdealCandidateBullets []string
	SelectionFlowText     string
	OfferSpeedText        string
	ScoutGuidelines       []Guideline
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// PlaceholderText はサインアップ直後のプロファイルに入る案内文言です。
const PlaceholderText = "文字を記入"

// NewPlaceholder はサインアップ時に自動作成されるプレースホルダー企業を返します。
// ガイドラインは正準形（categoryとcontentのリスト）で各カテゴリ1件ずつ用意します。
func NewPlaceholder() *Company {
	return &Company{
		Name:                  "株式会社〇〇",
		ShortName:             PlaceholderText,
		Description:           PlaceholderText,
		Features:              []string{PlaceholderText},
		CommonPositions:       []string{PlaceholderText},
		IdealCandidateBullets: []string{PlaceholderText},
		SelectionFlowText:     PlaceholderText,
		OfferSpeedText:        PlaceholderText,
		ScoutGuidelines: []Guideline{
			{Category: GuidelineMindset, Content: PlaceholderText},
			{Category: GuidelineStructure, Content: PlaceholderText},
			{Category: GuidelineNGWords, Content: PlaceholderText},
		},
	}
}

// GuidelinesByCategory はガイドラインを保存順を保ったまま3カテゴリへ分配します。
func (c *Company) GuidelinesByCategory() (mindset, structure, ngWords []string) {
	for _, g := range c.ScoutGuidelines {
		switch g.Category {
		case GuidelineMindset:
			mindset = append(mindset, g.Content)
		case GuidelineStructure:
			structure = append(structure, g.Content)
		case GuidelineNGWords:
			ngWords = append(ngWords, g.Content)
		}
	}
	return mindset, structure, ngWords
}
