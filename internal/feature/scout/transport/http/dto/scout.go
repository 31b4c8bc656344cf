// Package dto はscoutフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"scout_backend/internal/feature/scout/domain/entity"
)

// ScoutResponse はスカウト1件のレスポンスボディです。
// 一覧・詳細では参照先の学生名・大学名・職種名を合成して返します。
type ScoutResponse struct {
	ID         uint      `json:"id"`
	CompanyID  uint      `json:"companyId"`
	StudentID  uint      `json:"studentId"`
	PositionID uint      `json:"positionId"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`

	StudentName       string `json:"studentName,omitempty"`
	StudentUniversity string `json:"studentUniversity,omitempty"`
	PositionName      string `json:"positionName,omitempty"`
}

// CreateScoutReq は POST /api/scouts のリクエストボディです。
// subject省略時は「スカウトメール」、status省略時はDRAFTが補われます。
type CreateScoutReq struct {
	StudentID  uint   `json:"studentId" binding:"required"`
	PositionID uint   `json:"positionId" binding:"required"`
	Subject    string `json:"subject"`
	Body       string `json:"body" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=DRAFT SENT"`
}

// GenerateReq は POST /api/scouts/generate のリクエストボディです。
type GenerateReq struct {
	StudentID  uint `json:"studentId" binding:"required"`
	PositionID uint `json:"positionId" binding:"required"`
}

// GenerateResponse は生成直後の未保存ドラフトです。
type GenerateResponse struct {
	Content      string `json:"content"`
	StudentName  string `json:"studentName"`
	PositionName string `json:"positionName"`
}

// NewScoutResponse はスカウトエンティティをレスポンスへ変換します。
func NewScoutResponse(s *entity.Scout) ScoutResponse {
	return ScoutResponse{
		ID:         s.ID,
		CompanyID:  s.CompanyID,
		StudentID:  s.StudentID,
		PositionID: s.PositionID,
		Subject:    s.Subject,
		Body:       s.Body,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

// NewScoutListItemResponse は参照先の名前を合成したレスポンスへ変換します。
func NewScoutListItemResponse(item *entity.ListItem) ScoutResponse {
	resp := NewScoutResponse(&item.Scout)
	resp.StudentName = item.StudentName
	resp.StudentUniversity = item.StudentUniversity
	resp.PositionName = item.PositionName
	return resp
}
