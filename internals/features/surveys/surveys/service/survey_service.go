// internals/features/surveys/surveys/service/survey_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "echomind_backend/internals/features/surveys/surveys/model"
	"echomind_backend/internals/helpers/fault"
)

func orderByIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, id ASC")
}

// LoadTree: survey → sections → questions, urut order_index lalu id.
func LoadTree(ctx context.Context, db *gorm.DB, surveyID uint) (*model.SurveyModel, error) {
	var s model.SurveyModel
	err := db.WithContext(ctx).
		Preload("Sections", orderByIndex).
		Preload("Sections.Questions", orderByIndex).
		First(&s, surveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("Survey not found")
		}
		return nil, err
	}
	// JSON selalu array (bukan null) untuk survey kosong
	if s.Sections == nil {
		s.Sections = []model.SurveySectionModel{}
	}
	for i := range s.Sections {
		if s.Sections[i].Questions == nil {
			s.Sections[i].Questions = []model.SurveyQuestionModel{}
		}
	}
	return &s, nil
}

// ListSections mengembalikan section (beserta questions) milik survey.
// Survey tidak ada → fault 404; survey tanpa section → slice kosong.
func ListSections(ctx context.Context, db *gorm.DB, surveyID uint) ([]model.SurveySectionModel, error) {
	tree, err := LoadTree(ctx, db, surveyID)
	if err != nil {
		return nil, err
	}
	return tree.Sections, nil
}

// DeleteSurvey menghapus survey beserta sections, questions dan responses.
// Survey yang masih di-assign ke classroom aktif (belum dihapus) ditolak (409).
func DeleteSurvey(ctx context.Context, db *gorm.DB, surveyID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.SurveyModel
		if err := tx.Select("id").First(&s, surveyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Survey not found")
			}
			return err
		}

		var assigned int64
		if err := tx.Table("classrooms").Where("survey_id = ? AND deleted_at IS NULL", surveyID).Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 {
			return fault.Conflict("Survey is assigned to a classroom and cannot be deleted")
		}

		sectionIDs := tx.Model(&model.SurveySectionModel{}).Select("id").Where("survey_id = ?", surveyID)
		questionIDs := tx.Model(&model.SurveyQuestionModel{}).Select("id").Where("section_id IN (?)", sectionIDs)

		if err := tx.Exec("DELETE FROM survey_responses WHERE survey_question_id IN (?)", questionIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&model.SurveyQuestionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.SurveySectionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SurveyModel{}, surveyID).Error
	})
}

// DeleteSection menghapus section + questions + responses terkait.
func DeleteSection(ctx context.Context, db *gorm.DB, sectionID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", sectionID).Limit(1).Find(&model.SurveySectionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fault.NotFound("Section not found")
		}

		questionIDs := tx.Model(&model.SurveyQuestionModel{}).Select("id").Where("section_id = ?", sectionID)
		if err := tx.Exec("DELETE FROM survey_responses WHERE survey_question_id IN (?)", questionIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", sectionID).Delete(&model.SurveyQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SurveySectionModel{}, sectionID).Error
	})
}

// DeleteQuestion menghapus question + responses terkait.
func DeleteQuestion(ctx context.Context, db *gorm.DB, questionID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM survey_responses WHERE survey_question_id = ?", questionID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.SurveyQuestionModel{}, questionID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fault.NotFound("Question not found")
		}
		return nil
	})
}

// nextOrderIndex: MAX(order_index)+1 dalam scope parent.
func nextOrderIndex(tx *gorm.DB, m any, column string, parentID uint) (int, error) {
	var maxOrder int
	err := tx.Model(m).
		Select("COALESCE(MAX(order_index), 0)").
		Where(column+" = ?", parentID).
		Scan(&maxOrder).Error
	return maxOrder + 1, err
}

// CreateSection: survey harus ada (404).
func CreateSection(ctx context.Context, db *gorm.DB, sec *model.SurveySectionModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.SurveyModel{}).Where("id = ?", sec.SurveyID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fault.NotFound("Survey not found")
		}
		idx, err := nextOrderIndex(tx, &model.SurveySectionModel{}, "survey_id", sec.SurveyID)
		if err != nil {
			return err
		}
		sec.OrderIndex = idx
		if err := tx.Create(sec).Error; err != nil {
			return err
		}
		sec.Questions = []model.SurveyQuestionModel{}
		return nil
	})
}

// CreateQuestion: section harus ada (404).
func CreateQuestion(ctx context.Context, db *gorm.DB, q *model.SurveyQuestionModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.SurveySectionModel{}).Where("id = ?", q.SectionID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fault.NotFound("Section not found")
		}
		idx, err := nextOrderIndex(tx, &model.SurveyQuestionModel{}, "section_id", q.SectionID)
		if err != nil {
			return err
		}
		q.OrderIndex = idx
		return tx.Create(q).Error
	})
}
