// Package entity はpositionフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Position は募集ポジションを表します。所有テナント（会社）にスコープされます。
type Position struct {
	ID           uint
	CompanyID    uint
	Name         string
	Summary      string
	Duties       []string
	Requirements []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
