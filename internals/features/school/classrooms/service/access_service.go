// internals/features/school/classrooms/service/access_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	model "echomind_backend/internals/features/school/classrooms/model"
	"echomind_backend/internals/helpers/fault"
)

// FindClassroom: 404 bila tidak ada (soft-deleted dianggap tidak ada).
func FindClassroom(ctx context.Context, db *gorm.DB, classroomID uint) (*model.ClassroomModel, error) {
	var cls model.ClassroomModel
	if err := db.WithContext(ctx).First(&cls, classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("Classroom not found")
		}
		return nil, err
	}
	return &cls, nil
}

// LoadManagedClassroom: classroom yang boleh dikelola user.
// Admin boleh semua; professor hanya miliknya sendiri.
func LoadManagedClassroom(ctx context.Context, db *gorm.DB, classroomID uint, userID uuid.UUID, role string) (*model.ClassroomModel, error) {
	cls, err := FindClassroom(ctx, db, classroomID)
	if err != nil {
		return nil, err
	}
	if role == constants.RoleAdmin {
		return cls, nil
	}
	if role == constants.RoleProfessor && cls.ProfessorID == userID {
		return cls, nil
	}
	return nil, fault.Forbidden("You do not manage this classroom")
}

// LoadOwnedClassroom: hanya professor pemilik (tanpa bypass admin).
func LoadOwnedClassroom(ctx context.Context, db *gorm.DB, classroomID uint, userID uuid.UUID) (*model.ClassroomModel, error) {
	cls, err := FindClassroom(ctx, db, classroomID)
	if err != nil {
		return nil, err
	}
	if cls.ProfessorID != userID {
		return nil, fault.Forbidden("Only the classroom's professor can do this")
	}
	return cls, nil
}

// IsEnrolled cek enrollment student di classroom.
func IsEnrolled(ctx context.Context, db *gorm.DB, classroomID uint, studentID uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.ClassroomStudentModel{}).
		Where("classroom_id = ? AND student_id = ?", classroomID, studentID).
		Count(&n).Error
	return n > 0, err
}

// LoadEnrolledClassroom: 404 classroom tidak ada, 403 bila student belum enroll.
func LoadEnrolledClassroom(ctx context.Context, db *gorm.DB, classroomID uint, studentID uuid.UUID) (*model.ClassroomModel, error) {
	cls, err := FindClassroom(ctx, db, classroomID)
	if err != nil {
		return nil, err
	}
	ok, err := IsEnrolled(ctx, db, classroomID, studentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fault.Forbidden("You are not enrolled in this classroom")
	}
	return cls, nil
}

// AssignSurvey: conditional update (survey_id IS NULL) supaya single-assignment atomik.
func AssignSurvey(ctx context.Context, db *gorm.DB, classroomID, surveyID uint) error {
	res := db.WithContext(ctx).Model(&model.ClassroomModel{}).
		Where("id = ? AND survey_id IS NULL", classroomID).
		Update("survey_id", surveyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fault.Conflict("A survey is already assigned to this classroom")
	}
	return nil
}

// DeleteClassroom soft-delete classroom dan melepas survey-nya: survey_id di-NULL-kan
// dan jawaban survey kelas ini dihapus, supaya survey bisa dihapus admin kemudian.
func DeleteClassroom(ctx context.Context, db *gorm.DB, classroomID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM survey_responses WHERE classroom_id = ?", classroomID).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ClassroomModel{}).Where("id = ?", classroomID).Update("survey_id", nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fault.NotFound("Classroom not found")
		}
		return tx.Delete(&model.ClassroomModel{}, classroomID).Error
	})
}
