// Package dto はstudentフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"scout_backend/internal/feature/student/domain/entity"
)

// EpisodeItem はエピソード1件のワイヤ表現です。
type EpisodeItem struct {
	ID              uint     `json:"id,omitempty"`
	Title           string   `json:"title"`
	Detail          string   `json:"detail"`
	AbstractComment string   `json:"abstractComment"`
	AchievementText string   `json:"achievementText"`
	Tags            []string `json:"tags"`
}

// StudentResponse は学生のレスポンスボディです。
// strengthTags / episodes[].tags は常に構造化JSONで返します。
type StudentResponse struct {
	ID            uint          `json:"id"`
	CompanyID     uint          `json:"companyId"`
	Name          string        `json:"name"`
	NameKana      string        `json:"nameKana"`
	University    string        `json:"university"`
	Faculty       string        `json:"faculty"`
	Notes         string        `json:"notes"`
	StrengthTags  []string      `json:"strengthTags"`
	ValueText     string        `json:"valueText"`
	LastScoutedAt *time.Time    `json:"lastScoutedAt"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Episodes      []EpisodeItem `json:"episodes,omitempty"`
}

// StudentReq は学生の作成・更新共通のリクエストボディです。
type StudentReq struct {
	Name         string        `json:"name" binding:"required"`
	NameKana     string        `json:"nameKana"`
	University   string        `json:"university"`
	Faculty      string        `json:"faculty"`
	Notes        string        `json:"notes"`
	StrengthTags []string      `json:"strengthTags"`
	ValueText    string        `json:"valueText"`
	Episodes     []EpisodeItem `json:"episodes"`
}

// AnalyzeReq は POST /api/students/analyze のリクエストボディです。
type AnalyzeReq struct {
	Text string `json:"text" binding:"required"`
}

// NewStudentResponse はドメインエンティティをレスポンスへ変換します。
// withEpisodes が false の場合、エピソードは省略されます（一覧用）。
func NewStudentResponse(s *entity.Student, withEpisodes bool) StudentResponse {
	tags := s.StrengthTags
	if tags == nil {
		tags = []string{}
	}
	resp := StudentResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		Name:          s.Name,
		NameKana:      s.NameKana,
		University:    s.University,
		Faculty:       s.Faculty,
		Notes:         s.Notes,
		StrengthTags:  tags,
		ValueText:     s.ValueText,
		LastScoutedAt: s.LastScoutedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if withEpisodes {
		episodes := make([]EpisodeItem, 0, len(s.Episodes))
		for _, ep := range s.Episodes {
			epTags := ep.Tags
			if epTags == nil {
				epTags = []string{}
			}
			episodes = append(episodes, EpisodeItem{
				ID:              ep.ID,
				Title:           ep.Title,
				Detail:          ep.Detail,
				AbstractComment: ep.AbstractComment,
				AchievementText: ep.AchievementText,
				Tags:            epTags,
			})
		}
		resp.Episodes = episodes
	}
	return resp
}
