// Package handler はscoutフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	companyuc "scout_backend/internal/feature/company/usecase"
	positionuc "scout_backend/internal/feature/position/usecase"
	"scout_backend/internal/feature/scout/domain/entity"
	"scout_backend/internal/feature/scout/transport/http/dto"
	"scout_backend/internal/feature/scout/usecase"
	studentuc "scout_backend/internal/feature/student/usecase"
	jwtmw "scout_backend/internal/platform/jwt"
)

// ScoutUsecase はスカウト履歴のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ScoutUsecase interface {
	List(ctx context.Context, companyID uint) ([]entity.ListItem, error)
	Get(ctx context.Context, companyID, id uint) (*entity.ListItem, error)
	Create(ctx context.Context, companyID uint, in usecase.CreateInput) (*entity.Scout, error)
}

// GenerateUsecase はスカウト本文の生成を定義します。
type GenerateUsecase interface {
	Generate(ctx context.Context, companyID, studentID, positionID uint) (*entity.Draft, error)
}

// ScoutHandler はスカウト管理のHTTPリクエストを処理します。
type ScoutHandler struct {
	scouts   ScoutUsecase
	generate GenerateUsecase
}

// NewScoutHandler はScoutHandlerの新しいインスタンスを生成します。
func NewScoutHandler(scouts ScoutUsecase, generate GenerateUsecase) *ScoutHandler {
	return &ScoutHandler{scouts: scouts, generate: generate}
}

// List は GET /api/scouts を処理します。
func (h *ScoutHandler) List(c *gin.Context) {
	items, err := h.scouts.List(c.Request.Context(), jwtmw.CompanyID(c))
	if err != nil {
		slog.Error("list scouts failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.ScoutResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewScoutListItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /api/scouts/:id を処理します。
func (h *ScoutHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.scouts.Get(c.Request.Context(), jwtmw.CompanyID(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrScoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scout not found"})
			return
		}
		slog.Error("get scout failed", "error", err, "company_id", jwtmw.CompanyID(c), "scout_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewScoutListItemResponse(item))
}

// Create は POST /api/scouts を処理します。
// 保存成功後、対象学生の最終スカウト日時が更新されます。
func (h *ScoutHandler) Create(c *gin.Context) {
	var req dto.CreateScoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scout, err := h.scouts.Create(c.Request.Context(), jwtmw.CompanyID(c), usecase.CreateInput{
		StudentID:  req.StudentID,
		PositionID: req.PositionID,
		Subject:    req.Subject,
		Body:       req.Body,
		Status:     req.Status,
	})
	if err != nil {
		slog.Error("create scout failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewScoutResponse(scout))
}

// Generate は POST /api/scouts/generate を処理します。
// 保存済みデータからプロンプトを組み立ててドラフト本文を返します。保存はしません。
func (h *ScoutHandler) Generate(c *gin.Context) {
	var req dto.GenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.generate.Generate(c.Request.Context(), jwtmw.CompanyID(c), req.StudentID, req.PositionID)
	if err != nil {
		if errors.Is(err, studentuc.ErrStudentNotFound) ||
			errors.Is(err, positionuc.ErrPositionNotFound) ||
			errors.Is(err, companyuc.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student or position not found"})
			return
		}
		slog.Error("generate scout failed", "error", err,
			"company_id", jwtmw.CompanyID(c), "student_id", req.StudentID, "position_id", req.PositionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.GenerateResponse{
		Content:      draft.Content,
		StudentName:  draft.StudentName,
		PositionName: draft.PositionName,
	})
}

// pathID は :id パスパラメータを解析します。不正な場合は400を書き込みます。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
