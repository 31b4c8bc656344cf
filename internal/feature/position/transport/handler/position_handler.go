// Package handler はpositionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scout_backend/internal/feature/position/domain/entity"
	"scout_backend/internal/feature/position/transport/http/dto"
	"scout_backend/internal/feature/position/usecase"
	jwtmw "scout_backend/internal/platform/jwt"
)

// PositionUsecase はポジションCRUDのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PositionUsecase interface {
	List(ctx context.Context, companyID uint) ([]entity.Position, error)
	Create(ctx context.Context, companyID uint, in usecase.CreateInput) (*entity.Position, error)
	Update(ctx context.Context, companyID, id uint, in usecase.UpdateInput) (*entity.Position, error)
	Delete(ctx context.Context, companyID, id uint) error
}

// PositionHandler はポジションCRUDのHTTPリクエストを処理します。
type PositionHandler struct {
	positions PositionUsecase
}

// NewPositionHandler はPositionHandlerの新しいインスタンスを生成します。
func NewPositionHandler(positions PositionUsecase) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// List は GET /api/positions を処理します。
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.positions.List(c.Request.Context(), jwtmw.CompanyID(c))
	if err != nil {
		slog.Error("list positions failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		out = append(out, dto.NewPositionResponse(&positions[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create は POST /api/positions を処理します。
func (h *PositionHandler) Create(c *gin.Context) {
	var req dto.CreatePositionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	position, err := h.positions.Create(c.Request.Context(), jwtmw.CompanyID(c), usecase.CreateInput{
		Name:         req.Name,
		Summary:      req.Summary,
		Duties:       req.Duties,
		Requirements: req.Requirements,
	})
	if err != nil {
		slog.Error("create position failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewPositionResponse(position))
}

// Update は PUT /api/positions/:id を処理します。
func (h *PositionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdatePositionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	position, err := h.positions.Update(c.Request.Context(), jwtmw.CompanyID(c), id, usecase.UpdateInput{
		Name:         req.Name,
		Summary:      req.Summary,
		Duties:       req.Duties,
		Requirements: req.Requirements,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrPositionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
			return
		}
		slog.Error("update position failed", "error", err, "company_id", jwtmw.CompanyID(c), "position_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPositionResponse(position))
}

// Delete は DELETE /api/positions/:id を処理します。
func (h *PositionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.positions.Delete(c.Request.Context(), jwtmw.CompanyID(c), id); err != nil {
		if errors.Is(err, usecase.ErrPositionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
			return
		}
		slog.Error("delete position failed", "error", err, "company_id", jwtmw.CompanyID(c), "position_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
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
