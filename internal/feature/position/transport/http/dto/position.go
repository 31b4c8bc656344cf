// Package dto はpositionフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"scout_backend/internal/feature/position/domain/entity"
)

// PositionResponse はポジションのレスポンスボディです。
// duties / requirements は常に構造化JSONで返します。
type PositionResponse struct {
	ID           uint      `json:"id"`
	CompanyID    uint      `json:"companyId"`
	Name         string    `json:"name"`
	Summary      string    `json:"summary"`
	Duties       []string  `json:"duties"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreatePositionReq はポジション作成のリクエストボディです。
type CreatePositionReq struct {
	Name         string   `json:"name" binding:"required"`
	Summary      string   `json:"summary"`
	Duties       []string `json:"duties"`
	Requirements []string `json:"requirements"`
}

// UpdatePositionReq はポジション更新のリクエストボディです。
// isActive を省略した場合は現在の値を維持します。
type UpdatePositionReq struct {
	Name         string   `json:"name" binding:"required"`
	Summary      string   `json:"summary"`
	Duties       []string `json:"duties"`
	Requirements []string `json:"requirements"`
	IsActive     *bool    `json:"isActive"`
}

// NewPositionResponse はドメインエンティティをレスポンスへ変換します。
func NewPositionResponse(p *entity.Position) PositionResponse {
	duties := p.Duties
	if duties == nil {
		duties = []string{}
	}
	requirements := p.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return PositionResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Name:         p.Name,
		Summary:      p.Summary,
		Duties:       duties,
		Requirements: requirements,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
