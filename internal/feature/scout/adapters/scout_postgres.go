// Package adapters はscoutフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"scout_backend/internal/feature/scout/domain/entity"
	"scout_backend/internal/feature/scout/usecase"
)

// ScoutModel は scouts テーブルの永続化モデルです。作成後に更新されることはありません。
type ScoutModel struct {
	ID         uint   `gorm:"primaryKey"`
	CompanyID  uint   `gorm:"index;not null"`
	StudentID  uint   `gorm:"index;not null"`
	PositionID uint   `gorm:"not null"`
	Subject    string `gorm:"size:255;not null"`
	Body       string `gorm:"type:text;not null"`
	Status     string `gorm:"size:16;not null;default:DRAFT"`
	CreatedAt  time.Time
}

// TableName はGORMのテーブル名を指定します。
func (ScoutModel) TableName() string { return "scouts" }

// scoutRow は参照先の名前を合成した一覧クエリの受け皿です。
type scoutRow struct {
	ScoutModel
	StudentName       string
	StudentUniversity string
	PositionName      string
}

// scoutPostgres はScoutRepositoryインターフェースのGORM実装です。
type scoutPostgres struct {
	db *gorm.DB
}

// scoutPostgresがScoutRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ScoutRepository = (*scoutPostgres)(nil)

// NewScoutRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewScoutRepository(db *gorm.DB) *scoutPostgres {
	return &scoutPostgres{db: db}
}

// ListByCompany はテナントのスカウトを新しい順で返します。
// 参照先の学生・ポジションはLEFT JOINで合成するため、参照先が削除済みでも行は返ります（名前は空）。
func (r *scoutPostgres) ListByCompany(ctx context.Context, companyID uint) ([]entity.ListItem, error) {
	var rows []scoutRow
	err := r.db.WithContext(ctx).
		Table("scouts").
		Select("scouts.*, students.name AS student_name, students.university AS student_university, positions.name AS position_name").
		Joins("LEFT JOIN students ON students.id = scouts.student_id").
		Joins("LEFT JOIN positions ON positions.id = scouts.position_id").
		Where("scouts.company_id = ?", companyID).
		Order("scouts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.ListItem, 0, len(rows))
	for i := range rows {
		out = append(out, *rowToListItem(&rows[i]))
	}
	return out, nil
}

// FindByID はテナント内のスカウトを参照先の名前付きで取得します。
// テナント外・存在しないIDはどちらも usecase.ErrScoutNotFound です。
func (r *scoutPostgres) FindByID(ctx context.Context, companyID, id uint) (*entity.ListItem, error) {
	var row scoutRow
	err := r.db.WithContext(ctx).
		Table("scouts").
		Select("scouts.*, students.name AS student_name, students.university AS student_university, positions.name AS position_name").
		Joins("LEFT JOIN students ON students.id = scouts.student_id").
		Joins("LEFT JOIN positions ON positions.id = scouts.position_id").
		Where("scouts.id = ? AND scouts.company_id = ?", id, companyID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrScoutNotFound
		}
		return nil, err
	}
	return rowToListItem(&row), nil
}

// Create はスカウトを保存し、採番されたIDと作成日時を書き戻します。
func (r *scoutPostgres) Create(ctx context.Context, s *entity.Scout) error {
	m := &ScoutModel{
		CompanyID:  s.CompanyID,
		StudentID:  s.StudentID,
		PositionID: s.PositionID,
		Subject:    s.Subject,
		Body:       s.Body,
		Status:     s.Status,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return nil
}

func rowToListItem(row *scoutRow) *entity.ListItem {
	return &entity.ListItem{
		Scout: entity.Scout{
			ID:         row.ID,
			CompanyID:  row.CompanyID,
			StudentID:  row.StudentID,
			PositionID: row.PositionID,
			Subject:    row.Subject,
			Body:       row.Body,
			Status:     row.Status,
			CreatedAt:  row.CreatedAt,
		},
		StudentName:       row.StudentName,
		StudentUniversity: row.StudentUniversity,
		PositionName:      row.PositionName,
	}
}
