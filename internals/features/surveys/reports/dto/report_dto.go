package dto

type QuestionReport struct {
	ID      uint        `json:"id"`
	Text    string      `json:"text"`
	Ratings map[int]int `json:"ratings"`
	Average float64     `json:"average"`
	Total   int         `json:"total"`
	Quality string      `json:"quality"`
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

type SummaryStats struct {
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
	Stats            *SummaryStats     `json:"stats"`
}
