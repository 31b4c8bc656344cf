// Package entity はstudentフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Episode は学生の活動実績（ガクチカ）1件を表します。
// 学生更新のたびに全削除・再作成されるため、IDは編集をまたいで保存されません。
type Episode struct {
	ID              uint
	StudentID       uint
	Title           string
	Detail          string
	AbstractComment string
	AchievementText string
	Tags            []string
}

// Student はスカウト候補の学生を表します。所有テナント（会社）にスコープされます。
type Student struct {
	ID            uint
	CompanyID     uint
	Name          string
	NameKana      string
	University    string
	Faculty       string
	Notes         string
	StrengthTags  []string
	ValueText     string
	LastScoutedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Episodes      []Episode
}
