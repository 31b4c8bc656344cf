// Package adapters はstudentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"scout_backend/internal/feature/student/domain/entity"
	"scout_backend/internal/feature/student/usecase"
	"scout_backend/internal/shared/jsonfield"
)

// StudentModel は students テーブルの永続化モデルです。
// strength_tags は一重JSONエンコードの文字列カラムとして保存します。
type StudentModel struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyID     uint   `gorm:"index;not null"`
	Name          string `gorm:"size:255;not null"`
	NameKana      string `gorm:"size:255"`
	University    string `gorm:"size:255"`
	Faculty       string `gorm:"size:255"`
	Notes         string `gorm:"type:text"`
	StrengthTags  string `gorm:"type:text"`
	ValueText     string `gorm:"type:text"`
	LastScoutedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName はGORMのテーブル名を指定します。
func (StudentModel) TableName() string { return "students" }

// EpisodeModel は student_episodes テーブルの永続化モデルです。
// 学生更新のたびに全削除・再作成されるため、行のIDは編集をまたいで保存されません。
type EpisodeModel struct {
	ID              uint   `gorm:"primaryKey"`
	StudentID       uint   `gorm:"index;not null"`
	Title           string `gorm:"size:255"`
	Detail          string `gorm:"type:text"`
	AbstractComment string `gorm:"type:text"`
	AchievementText string `gorm:"type:text"`
	Tags            string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName はGORMのテーブル名を指定します。
func (EpisodeModel) TableName() string { return "student_episodes" }

// studentPostgres はStudentRepositoryインターフェースのGORM実装です。
type studentPostgres struct {
	db *gorm.DB
}

// studentPostgresがStudentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StudentRepository = (*studentPostgres)(nil)

// NewStudentRepository は指定されたgorm.DB接続でリポジトリを生成します。
func NewStudentRepository(db *gorm.DB) *studentPostgres {
	return &studentPostgres{db: db}
}

// ListByCompany はテナントの学生を新しい順で返します（エピソードは含みません）。
func (r *studentPostgres) ListByCompany(ctx context.Context, companyID uint, query string) ([]entity.Student, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR university LIKE ?", like, like)
	}

	var models []StudentModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Student, 0, len(models))
	for i := range models {
		out = append(out, *studentToEntity(&models[i], nil))
	}
	return out, nil
}

// FindByID はテナント内の学生をエピソード付きで取得します。
// テナント外・存在しないIDはどちらも usecase.ErrStudentNotFound です。
func (r *studentPostgres) FindByID(ctx context.Context, companyID, id uint) (*entity.Student, error) {
	var m StudentModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStudentNotFound
		}
		return nil, err
	}

	var episodes []EpisodeModel
	err = r.db.WithContext(ctx).
		Where("student_id = ?", m.ID).
		Order("id ASC").
		Find(&episodes).Error
	if err != nil {
		return nil, err
	}
	return studentToEntity(&m, episodes), nil
}

// Create は学生とエピソードを単一トランザクションで作成します。
func (r *studentPostgres) Create(ctx context.Context, s *entity.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := studentFromEntity(s)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		s.ID = m.ID
		s.CreatedAt = m.CreatedAt
		s.UpdatedAt = m.UpdatedAt
		return insertEpisodes(tx, m.ID, s)
	})
}

// Update は学生情報を更新し、エピソード集合を全削除・再作成で入れ替えます。
// すべて単一トランザクション内で行うため、途中失敗時は元のエピソード集合が残ります。
func (r *studentPostgres) Update(ctx context.Context, s *entity.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := studentFromEntity(s)
		result := tx.Model(&StudentModel{}).
			Where("id = ? AND company_id = ?", s.ID, s.CompanyID).
			Updates(map[string]any{
				"name":          m.Name,
				"name_kana":     m.NameKana,
				"university":    m.University,
				"faculty":       m.Faculty,
				"notes":         m.Notes,
				"strength_tags": m.StrengthTags,
				"value_text":    m.ValueText,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrStudentNotFound
		}

		if err := tx.Where("student_id = ?", s.ID).Delete(&EpisodeModel{}).Error; err != nil {
			return err
		}
		return insertEpisodes(tx, s.ID, s)
	})
}

// Delete はテナント内の学生を所属エピソードごと物理削除します。
func (r *studentPostgres) Delete(ctx context.Context, companyID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND company_id = ?", id, companyID).Delete(&StudentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrStudentNotFound
		}
		return tx.Where("student_id = ?", id).Delete(&EpisodeModel{}).Error
	})
}

// TouchLastScoutedAt は学生の最終スカウト日時を更新します。
// スカウト保存直後に呼ばれます（scoutフィーチャーのユースケースから利用）。
func (r *studentPostgres) TouchLastScoutedAt(ctx context.Context, companyID, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&StudentModel{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("last_scouted_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrStudentNotFound
	}
	return nil
}

// insertEpisodes はエンティティのエピソードを挿入し、採番されたIDを書き戻します。
func insertEpisodes(tx *gorm.DB, studentID uint, s *entity.Student) error {
	for i := range s.Episodes {
		ep := &s.Episodes[i]
		m := &EpisodeModel{
			StudentID:       studentID,
			Title:           ep.Title,
			Detail:          ep.Detail,
			AbstractComment: ep.AbstractComment,
			AchievementText: ep.AchievementText,
			Tags:            jsonfield.EncodeStrings(ep.Tags),
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		ep.ID = m.ID
		ep.StudentID = studentID
	}
	return nil
}

func studentToEntity(m *StudentModel, episodes []EpisodeModel) *entity.Student {
	eps := make([]entity.Episode, 0, len(episodes))
	for i := range episodes {
		em := &episodes[i]
		eps = append(eps, entity.Episode{
			ID:              em.ID,
			StudentID:       em.StudentID,
			Title:           em.Title,
			Detail:          em.Detail,
			AbstractComment: em.AbstractComment,
			AchievementText: em.AchievementText,
			Tags:            jsonfield.DecodeStrings(em.Tags),
		})
	}
	return &entity.Student{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		NameKana:      m.NameKana,
		University:    m.University,
		Faculty:       m.Faculty,
		Notes:         m.Notes,
		StrengthTags:  jsonfield.DecodeStrings(m.StrengthTags),
		ValueText:     m.ValueText,
		LastScoutedAt: m.LastScoutedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Episodes:      eps,
	}
}

func studentFromEntity(s *entity.Student) *StudentModel {
	return &StudentModel{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		NameKana:     s.NameKana,
		University:   s.University,
		Faculty:      s.Faculty,
		Notes:        s.Notes,
		StrengthTags: jsonfield.EncodeStrings(s.StrengthTags),
		ValueText:    s.ValueText,
	}
}
