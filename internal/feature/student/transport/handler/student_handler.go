// Package handler はstudentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scout_backend/internal/feature/student/domain/entity"
	"scout_backend/internal/feature/student/transport/http/dto"
	"scout_backend/internal/feature/student/usecase"
	"scout_backend/internal/platform/gemini"
	jwtmw "scout_backend/internal/platform/jwt"
)

// StudentUsecase は学生CRUDのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type StudentUsecase interface {
	List(ctx context.Context, companyID uint, query string) ([]entity.Student, error)
	Get(ctx context.Context, companyID, id uint) (*entity.Student, error)
	Create(ctx context.Context, companyID uint, in usecase.Input) (*entity.Student, error)
	Update(ctx context.Context, companyID, id uint, in usecase.Input) (*entity.Student, error)
	Delete(ctx context.Context, companyID, id uint) error
}

// AnalyzeUsecase は貼り付けテキストからの学生プロフィール抽出を定義します。
type AnalyzeUsecase interface {
	Analyze(ctx context.Context, text string) (*usecase.StudentDraft, error)
}

// StudentHandler は学生管理のHTTPリクエストを処理します。
type StudentHandler struct {
	students StudentUsecase
	analyze  AnalyzeUsecase
}

// NewStudentHandler はStudentHandlerの新しいインスタンスを生成します。
func NewStudentHandler(students StudentUsecase, analyze AnalyzeUsecase) *StudentHandler {
	return &StudentHandler{students: students, analyze: analyze}
}

// List は GET /api/students を処理します。?q= で氏名・大学名の部分一致検索ができます。
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context(), jwtmw.CompanyID(c), c.Query("q"))
	if err != nil {
		slog.Error("list students failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, dto.NewStudentResponse(&students[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /api/students/:id を処理します。エピソードを含めて返します。
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), jwtmw.CompanyID(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		slog.Error("get student failed", "error", err, "company_id", jwtmw.CompanyID(c), "student_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStudentResponse(student, true))
}

// Create は POST /api/students を処理します。
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := h.students.Create(c.Request.Context(), jwtmw.CompanyID(c), toInput(req))
	if err != nil {
		slog.Error("create student failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewStudentResponse(student, true))
}

// Update は PUT /api/students/:id を処理します。エピソードは送信された集合で置き換えられます。
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := h.students.Update(c.Request.Context(), jwtmw.CompanyID(c), id, toInput(req))
	if err != nil {
		if errors.Is(err, usecase.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		slog.Error("update student failed", "error", err, "company_id", jwtmw.CompanyID(c), "student_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStudentResponse(student, true))
}

// Delete は DELETE /api/students/:id を処理します。
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.students.Delete(c.Request.Context(), jwtmw.CompanyID(c), id); err != nil {
		if errors.Is(err, usecase.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		slog.Error("delete student failed", "error", err, "company_id", jwtmw.CompanyID(c), "student_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Analyze は POST /api/students/analyze を処理します。
// 貼り付けテキストを構造化した学生プロフィール案を返します。保存はしません。
func (h *StudentHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "テキストを入力してください。"})
		return
	}
	draft, err := h.analyze.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "テキストを入力してください。"})
			return
		}
		if errors.Is(err, gemini.ErrInvalidOutput) {
			slog.Error("student analysis parse failed", "error", err, "company_id", jwtmw.CompanyID(c))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "AI解析結果の構造化に失敗しました。",
				"code":  "ANALYSIS_PARSE_FAILED",
			})
			return
		}
		slog.Error("student analysis failed", "error", err, "company_id", jwtmw.CompanyID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func toInput(req dto.StudentReq) usecase.Input {
	episodes := make([]usecase.EpisodeInput, 0, len(req.Episodes))
	for _, ep := range req.Episodes {
		episodes = append(episodes, usecase.EpisodeInput{
			Title:           ep.Title,
			Detail:          ep.Detail,
			AbstractComment: ep.AbstractComment,
			AchievementText: ep.AchievementText,
			Tags:            ep.Tags,
		})
	}
	return usecase.Input{
		Name:         req.Name,
		NameKana:     req.NameKana,
		University:   req.University,
		Faculty:      req.Faculty,
		Notes:        req.Notes,
		StrengthTags: req.StrengthTags,
		ValueText:    req.ValueText,
		Episodes:     episodes,
	}
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
