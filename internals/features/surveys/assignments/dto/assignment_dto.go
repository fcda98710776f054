package dto

import surveyModel "echomind_backend/internals/features/surveys/surveys/model"

type AssignSurveyRequest struct {
	SurveyID uint `json:"survey_id" validate:"required,gt=0"`
}

type CheckSurveyResponse struct {
	HasSurvey bool                     `json:"has_survey"`
	Survey    *surveyModel.SurveyModel `json:"survey,omitempty"`
}
