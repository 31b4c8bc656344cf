// Package entity はscoutフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// スカウトのステータス。作成後の更新APIは存在しません。
const (
	StatusDraft = "DRAFT"
	StatusSent  = "SENT"
)

// Scout は生成・保存されたスカウトメッセージを表します。作成後は不変です。
type Scout struct {
	ID         uint
	CompanyID  uint
	StudentID  uint
	PositionID uint
	Subject    string
	Body       string
	Status     string
	CreatedAt  time.Time
}

// ListItem は一覧表示用に参照先の名前を合成したスカウトです。
type ListItem struct {
	Scout
	StudentName       string
	StudentUniversity string
	PositionName      string
}

// Draft は生成直後の未保存ドラフトです。保存は別途 /api/scouts へのPOSTで行われます。
type Draft struct {
	Content      string
	StudentName  string
	PositionName string
}
