package dto

type ResponseItem struct {
	SurveyQuestionID uint `json:"survey_question_id" validate:"required,gt=0"`
	Rating           int  `json:"rating" validate:"required,min=1,max=5"`
}

type SubmitResponsesRequest struct {
	ClassroomID uint           `json:"classroom_id" validate:"required,gt=0"`
	Responses   []ResponseItem `json:"responses" validate:"required,min=1,dive"`
}

type ResponsesResponse struct {
	Responses []ResponseItem `json:"responses"`
}

type SubmitResult struct {
	ClassroomID uint `json:"classroom_id"`
	SurveyID    uint `json:"survey_id"`
	Saved       int  `json:"saved"`
}
