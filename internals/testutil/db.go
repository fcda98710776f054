// Package testutil menyediakan fixture bersama untuk test handler & client:
// database SQLite sementara, app fiber lengkap dengan routes, dan token JWT.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	institutesModel "echomind_backend/internals/features/lembaga/institutes/model"
	classroomModel "echomind_backend/internals/features/school/classrooms/model"
	evaluationModel "echomind_backend/internals/features/school/evaluations/model"
	responseModel "echomind_backend/internals/features/surveys/responses/model"
	surveyModel "echomind_backend/internals/features/surveys/surveys/model"
	authModel "echomind_backend/internals/features/users/auth/model"
	userModel "echomind_backend/internals/features/users/user/model"
)

// Models = seluruh tabel yang di-AutoMigrate untuk test.
func Models() []any {
	return []any{
		&institutesModel.InstituteModel{},
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&surveyModel.SurveyModel{},
		&surveyModel.SurveySectionModel{},
		&surveyModel.SurveyQuestionModel{},
		&classroomModel.ClassroomModel{},
		&classroomModel.ClassroomStudentModel{},
		&responseModel.SurveyResponseModel{},
		&evaluationModel.ClassroomEvaluationModel{},
		&evaluationModel.ClassroomAnalysisModel{},
	}
}

// NewDB membuka SQLite file sementara (per test) lalu AutoMigrate.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "echomind_test.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
