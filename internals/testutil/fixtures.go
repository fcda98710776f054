package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"echomind_backend/internals/constants"
	classroomModel "echomind_backend/internals/features/school/classrooms/model"
	surveyModel "echomind_backend/internals/features/surveys/surveys/model"
	authHelper "echomind_backend/internals/features/users/auth/helper"
	authService "echomind_backend/internals/features/users/auth/service"
	userModel "echomind_backend/internals/features/users/user/model"
)

const DefaultPassword = "secret123"

// CreateUser membuat user aktif dengan password DefaultPassword; return user + access token.
func (e *Env) CreateUser(t testing.TB, role, userName string) (userModel.UserModel, string) {
	t.Helper()
	hash, err := authHelper.HashPassword(DefaultPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := userModel.UserModel{
		UserName: userName,
		Email:    fmt.Sprintf("%s@echomind.test", userName),
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := e.DB.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", userName, err)
	}
	return u, e.Token(t, u)
}

func (e *Env) Token(t testing.TB, u userModel.UserModel) string {
	t.Helper()
	tok, _, err := authService.IssueAccessToken(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func (e *Env) Admin(t testing.TB) (userModel.UserModel, string) {
	return e.CreateUser(t, constants.RoleAdmin, "admin")
}

func (e *Env) CreateClassroom(t testing.TB, professorID uuid.UUID, name, code string) classroomModel.ClassroomModel {
	t.Helper()
	cls := classroomModel.ClassroomModel{Name: name, Code: code, ProfessorID: professorID}
	if err := e.DB.Create(&cls).Error; err != nil {
		t.Fatalf("create classroom: %v", err)
	}
	return cls
}

func (e *Env) Enroll(t testing.TB, classroomID uint, studentID uuid.UUID) {
	t.Helper()
	row := classroomModel.ClassroomStudentModel{ClassroomID: classroomID, StudentID: studentID}
	if err := e.DB.Create(&row).Error; err != nil {
		t.Fatalf("enroll: %v", err)
	}
}

// CreateSurvey membuat survey satu section dengan pertanyaan-pertanyaan yang diberikan.
func (e *Env) CreateSurvey(t testing.TB, title, sectionTitle string, questions ...string) surveyModel.SurveyModel {
	t.Helper()
	sec := surveyModel.SurveySectionModel{Title: sectionTitle, OrderIndex: 1}
	for i, q := range questions {
		sec.Questions = append(sec.Questions, surveyModel.SurveyQuestionModel{QuestionText: q, OrderIndex: i + 1})
	}
	s := surveyModel.SurveyModel{Title: title, Sections: []surveyModel.SurveySectionModel{sec}}
	if err := e.DB.Create(&s).Error; err != nil {
		t.Fatalf("create survey: %v", err)
	}
	return s
}

func (e *Env) AssignSurvey(t testing.TB, classroomID, surveyID uint) {
	t.Helper()
	if err := e.DB.Model(&classroomModel.ClassroomModel{}).
		Where("id = ?", classroomID).
		Update("survey_id", surveyID).Error; err != nil {
		t.Fatalf("assign survey: %v", err)
	}
}
