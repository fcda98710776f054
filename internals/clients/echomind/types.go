package echomind

import (
	"echomind_backend/internals/helpers/stats"
)

type Survey struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
}

// QuestionIDs = semua id pertanyaan (flatten lintas section).
func (s Survey) QuestionIDs() []uint {
	var out []uint
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			out = append(out, q.ID)
		}
	}
	return out
}

type SurveySummary struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	SectionCount  int64   `json:"section_count"`
	QuestionCount int64   `json:"question_count"`
}

type Section struct {
	ID          uint       `json:"id"`
	SurveyID    uint       `json:"survey_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	OrderIndex  int        `json:"order_index"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	ID           uint   `json:"id"`
	SectionID    uint   `json:"section_id"`
	QuestionText string `json:"question_text"`
	OrderIndex   int    `json:"order_index"`
}

type Classroom struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Subject      *string `json:"subject,omitempty"`
	Description  *string `json:"description,omitempty"`
	Code         string  `json:"code"`
	SurveyID     *uint   `json:"survey_id"`
	IsArchived   bool    `json:"is_archived"`
	StudentCount int64   `json:"student_count"`
}

type EnrolledClassroom struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	SurveyID *uint  `json:"survey_id"`
}

type EnrollmentCheck struct {
	Enrolled  bool              `json:"enrolled"`
	Classroom EnrolledClassroom `json:"classroom"`
}

type SurveyCheck struct {
	HasSurvey bool    `json:"has_survey"`
	Survey    *Survey `json:"survey,omitempty"`
}

type ResponseItem struct {
	SurveyQuestionID uint `json:"survey_question_id"`
	Rating           int  `json:"rating"`
}

type SubmitResponses struct {
	ClassroomID uint           `json:"classroom_id"`
	Responses   []ResponseItem `json:"responses"`
}

type SubmitResult struct {
	ClassroomID uint `json:"classroom_id"`
	SurveyID    uint `json:"survey_id"`
	Saved       int  `json:"saved"`
}

type Evaluation struct {
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type EvaluationSummary struct {
	Evaluations []Evaluation `json:"evaluations"`
	Count       int          `json:"count"`
	Average     float64      `json:"average"`
}

/* ===================== REPORT ===================== */

type QuestionReport struct {
	ID      uint                    `json:"id"`
	Text    string                  `json:"text"`
	Ratings stats.Histogram `json:"ratings"`
	Average float64                 `json:"average"`
	Total   int                     `json:"total"`
	Quality string                  `json:"quality"`
}

type SectionReport struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Average   float64          `json:"average"`
	Questions []QuestionReport `json:"questions"`
}

type SurveyReportBody struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Sections []SectionReport `json:"sections"`
}

type ReportStats struct {
	TotalQuestions int     `json:"total_questions"`
	OverallAverage float64 `json:"overall_average"`
	OverallQuality string  `json:"overall_quality"`
	Sections       int     `json:"sections"`
}

type SurveyReport struct {
	ClassroomName    string            `json:"classroom_name"`
	ClassroomID      uint              `json:"classroom_id"`
	Survey           *SurveyReportBody `json:"survey"`
	TotalRespondents int               `json:"total_respondents"`
	EnrolledStudents int               `json:"enrolled_students"`
	CompletionRate   float64           `json:"completion_rate"`
	Stats            *ReportStats      `json:"stats"`
}
