// Package dto はcompanyフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"scout_backend/internal/feature/company/domain/entity"
)

// GuidelineItem はガイドライン1件のワイヤ表現です。
type GuidelineItem struct {
	Category string `json:"category" binding:"required,oneof=mindset structure ngWords"`
	Content  string `json:"content" binding:"required"`
}

// CompanyResponse は会社プロファイルのレスポンスボディです。
// リスト型フィールドは常に構造化JSONで返します（文字列で返すことはありません）。
type CompanyResponse struct {
	ID                    uint            `json:"id"`
	Name                  string          `json:"name"`
	ShortName             string          `json:"shortName"`
	RecruiterSignature    string          `json:"recruiterSignature"`
	Description           string          `json:"description"`
	Features              []string        `json:"features"`
	CommonPositions       []string        `json:"commonPositions"`
	IdealCandidateBullets []string        `json:"idealCandidateBullets"`
	SelectionFlowText     string          `json:"selectionFlowText"`
	OfferSpeedText        string          `json:"offerSpeedText"`
	ScoutGuidelines       []GuidelineItem `json:"scoutGuidelines"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// UpdateCompanyReq は会社プロファイル更新のリクエストボディです。
type UpdateCompanyReq struct {
	Name                  string          `json:"name"`
	ShortName             string          `json:"shortName"`
	RecruiterSignature    string          `json:"recruiterSignature"`
	Description           string          `json:"description"`
	Features              []string        `json:"features"`
	CommonPositions       []string        `json:"commonPositions"`
	IdealCandidateBullets []string        `json:"idealCandidateBullets"`
	SelectionFlowText     string          `json:"selectionFlowText"`
	OfferSpeedText        string          `json:"offerSpeedText"`
	ScoutGuidelines       []GuidelineItem `json:"scoutGuidelines" binding:"omitempty,dive"`
}

// AnalyzeReq はテキスト解析系エンドポイント共通のリクエストボディです。
type AnalyzeReq struct {
	Text string `json:"text" binding:"required"`
}

// NewCompanyResponse はドメインエンティティをレスポンスへ変換します。
func NewCompanyResponse(c *entity.Company) CompanyResponse {
	guidelines := make([]GuidelineItem, 0, len(c.ScoutGuidelines))
	for _, g := range c.ScoutGuidelines {
		guidelines = append(guidelines, GuidelineItem{Category: g.Category, Content: g.Content})
	}
	return CompanyResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		ShortName:             c.ShortName,
		RecruiterSignature:    c.RecruiterSignature,
		Description:           c.Description,
		Features:              emptyIfNil(c.Features),
		CommonPositions:       emptyIfNil(c.CommonPositions),
		IdealCandidateBullets: emptyIfNil(c.IdealCandidateBullets),
		SelectionFlowText:     c.SelectionFlowText,
		OfferSpeedText:        c.OfferSpeedText,
		ScoutGuidelines:       guidelines,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// Guidelines はワイヤ表現をドメインのガイドラインへ変換します。
func (r UpdateCompanyReq) Guidelines() []entity.Guideline {
	out := make([]entity.Guideline, 0, len(r.ScoutGuidelines))
	for _, g := range r.ScoutGuidelines {
		out = append(out, entity.Guideline{Category: g.Category, Content: g.Content})
	}
	return out
}

// emptyIfNil はJSONで null ではなく [] を返すための変換です。
func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
