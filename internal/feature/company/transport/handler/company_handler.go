// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scout_backend/internal/feature/company/domain/entity"
	"scout_backend/internal/feature/company/transport/http/dto"
	"scout_backend/internal/feature/company/usecase"
	"scout_backend/internal/platform/gemini"
	jwtmw "scout_backend/internal/platform/jwt"
)

// CompanyUsecase は会社プロファイル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CompanyUsecase interface {
	Get(ctx context.Context, companyID uint) (*entity.Company, error)
	Update(ctx context.Context, companyID uint, in usecase.UpdateInput) (*entity.Company, error)
}

// AnalyzeUsecase はテキスト解析操作のユースケースを定義します。
type AnalyzeUsecase interface {
	AnalyzeProfile(ctx context.Context, text string) (*usecase.ProfileDraft, error)
	AnalyzeGuidelines(ctx context.Context, text string) (*usecase.GuidelineDraft, error)
}

// CompanyHandler は会社プロファイルと解析のHTTPリクエストを処理します。
type CompanyHandler struct {
	company CompanyUsecase
	analyze AnalyzeUsecase
}

// NewCompanyHandler はCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(company CompanyUsecase, analyze AnalyzeUsecase) *CompanyHandler {
	return &CompanyHandler{company: company, analyze: analyze}
}

// Get は GET /api/company を処理します。
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.company.Get(c.Request.Context(), jwtmw.CompanyID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		slog.Error("get company failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewCompanyResponse(company))
}

// Update は PUT /api/company を処理します。
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	company, err := h.company.Update(c.Request.Context(), jwtmw.CompanyID(c), usecase.UpdateInput{
		Name:                  req.Name,
		ShortName:             req.ShortName,
		RecruiterSignature:    req.RecruiterSignature,
		Description:           req.Description,
		Features:              req.Features,
		CommonPositions:       req.CommonPositions,
		IdealCandidateBullets: req.IdealCandidateBullets,
		SelectionFlowText:     req.SelectionFlowText,
		OfferSpeedText:        req.OfferSpeedText,
		ScoutGuidelines:       req.Guidelines(),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		slog.Error("update company failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewCompanyResponse(company))
}

// AnalyzeProfile は POST /api/company/analyze を処理します。
// モデル応答が解析不能な場合は一般エラーと区別できるメッセージで500を返します。
func (h *CompanyHandler) AnalyzeProfile(c *gin.Context) {
	var req dto.AnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析対象のテキストがありません。"})
		return
	}
	draft, err := h.analyze.AnalyzeProfile(c.Request.Context(), req.Text)
	if err != nil {
		h.analyzeError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AnalyzeGuidelines は POST /api/guidelines/analyze を処理します。
func (h *CompanyHandler) AnalyzeGuidelines(c *gin.Context) {
	var req dto.AnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "テキストが空です"})
		return
	}
	draft, err := h.analyze.AnalyzeGuidelines(c.Request.Context(), req.Text)
	if err != nil {
		h.analyzeError(c, err, "guidelines")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// analyzeError は解析系エンドポイント共通のエラーマッピングです。
func (h *CompanyHandler) analyzeError(c *gin.Context, err error, kind string) {
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析対象のテキストがありません。"})
	case errors.Is(err, gemini.ErrInvalidOutput):
		slog.Warn("analysis output unparsable", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI解析結果の構造化に失敗しました。", "code": "ANALYSIS_PARSE_FAILED"})
	default:
		slog.Error("analysis failed", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "解析処理中にエラーが発生しました。"})
	}
}
