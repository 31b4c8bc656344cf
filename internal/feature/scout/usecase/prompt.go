package usecase

import (
	"fmt"
	"strings"

	companyentity "scout_backend/internal/feature/company/domain/entity"
	positionentity "scout_backend/internal/feature/position/domain/entity"
	studententity "scout_backend/internal/feature/student/domain/entity"
)

// scoutPromptTemplate はスカウト本文生成プロンプトの骨格です。
// 埋め込み順: ガイドライン、企業情報、ポジション、学生情報、エピソード、作成指示。
const scoutPromptTemplate = `
あなたはプロの新卒採用スカウトライターです。
以下の情報を元に、学生一人ひとりに個別化された、魅力的なスカウトメールを作成してください。

%s

【企業情報】
会社名: %s
特徴: %s
紹介文: %s
採用担当: %s

【募集ポジション】
職種名: %s
概要: %s
業務内容:
- %s
必須要件:
- %s

【学生情報】
氏名: %s
大学: %s %s
強みタグ: %s
価値観: %s

【学生のエピソード（ガクチカ）】
%s

【作成指示】
以下の構成でスカウト文章を作成してください。件名は不要です。本文のみ作成してください。

1. **挨拶とアプローチ理由**: 「%sの%s様、はじめまして」から始め、なぜこの学生に声をかけたのか、エピソードや強み（%s）に具体的に触れながら、「あなたの〇〇という点に非常に魅力を感じました」と伝えてください。ここが最も重要です。定型文に見えないよう、エピソードの具体的な内容を必ず引用してください。
2. **会社紹介**: 学生の価値観（%s）や強みにリンクさせる形で、会社の魅力を簡潔に伝えてください。
3. **ポジション提案**: 今回募集している「%s」が、学生にとってなぜおすすめなのか、キャリアの観点から提案してください。
4. **結び**: カジュアル面談への招待など、次のアクションを促してください。署名は「%s」を使用してください。
5. **最重要項目**: 上記の【重要：ユーザー定義ノウハウ】で指定されたルールは、デフォルトの指示よりも優先して厳守してください。

文体は丁寧ですが、熱意が伝わるように少しエモーショナルにしてください。文字数は600〜800文字程度を目安にしてください。
`

// BuildScoutPrompt は保存済みデータからスカウト生成プロンプトを組み立てる純粋関数です。
// 外部呼び出しは一切行いません。空のフィールドは空のセグメントとして描画され、失敗にはなりません。
func BuildScoutPrompt(company *companyentity.Company, position *positionentity.Position, student *studententity.Student) string {
	mindset, structure, ngWords := company.GuidelinesByCategory()

	return fmt.Sprintf(scoutPromptTemplate,
		guidelineText(mindset, structure, ngWords),
		company.Name,
		strings.Join(company.Features, "、"),
		company.Description,
		company.RecruiterSignature,
		position.Name,
		position.Summary,
		strings.Join(position.Duties, "\n- "),
		strings.Join(position.Requirements, "\n- "),
		student.Name,
		student.University,
		student.Faculty,
		strings.Join(student.StrengthTags, "、"),
		student.ValueText,
		episodesText(student.Episodes),
		student.University,
		student.Name,
		strings.Join(student.StrengthTags, "、"),
		student.ValueText,
		position.Name,
		company.RecruiterSignature,
	)
}

// guidelineText はユーザー定義ガイドラインを3カテゴリのブロックに展開します。
// 3つの見出しはカテゴリが空でも常に描画します（その場合は箇条書きなし）。
func guidelineText(mindset, structure, ngWords []string) string {
	return fmt.Sprintf(`
【重要：ユーザー定義ノウハウ】
以下のガイドラインを必ず遵守してください。
[基本スタンス・マインド]
%s

[構成ルール]
%s

[NGワード・禁止事項（絶対に使わないこと）]
%s
`,
		bullets(mindset),
		bullets(structure),
		bullets(ngWords),
	)
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// episodesText はエピソードを保存順に連結します。
func episodesText(episodes []studententity.Episode) string {
	blocks := make([]string, 0, len(episodes))
	for i, ep := range episodes {
		blocks = append(blocks, fmt.Sprintf("エピソード%d:【%s】\n内容: %s\n実績: %s\n", i+1, ep.Title, ep.Detail, ep.AchievementText))
	}
	return strings.Join(blocks, "\n")
}
