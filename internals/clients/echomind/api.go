package echomind

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

/* ===================== SURVEYS ===================== */

func (c *Client) ListSurveys(ctx context.Context, page, perPage int) ([]SurveySummary, error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	var out []SurveySummary
	if err := c.do(ctx, fiber.MethodGet, query("/api/surveys", v), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSurvey mengambil tree lengkap survey → sections → questions.
func (c *Client) GetSurvey(ctx context.Context, surveyID uint) (*Survey, error) {
	if surveyID == 0 {
		return nil, ErrMissingParam
	}
	var s Survey
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/surveys/%d", surveyID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateSurvey(ctx context.Context, title string, description *string) (*Survey, error) {
	var s Survey
	body := fiber.Map{"title": title, "description": description}
	if err := c.do(ctx, fiber.MethodPost, "/api/surveys", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSurvey(ctx context.Context, surveyID uint, fields fiber.Map) (*Survey, error) {
	var s Survey
	if err := c.do(ctx, fiber.MethodPut, idPath("/api/surveys/%d", surveyID), fields, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSurvey(ctx context.Context, surveyID uint) error {
	return c.do(ctx, fiber.MethodDelete, idPath("/api/surveys/%d", surveyID), nil, nil)
}

/* ===================== SECTIONS / QUESTIONS ===================== */

func (c *Client) ListSections(ctx context.Context, surveyID uint) ([]Section, error) {
	var out []Section
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/survey-sections/%d", surveyID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSection(ctx context.Context, surveyID uint, title string, description *string) (*Section, error) {
	var s Section
	body := fiber.Map{"survey_id": surveyID, "title": title, "description": description}
	if err := c.do(ctx, fiber.MethodPost, "/api/survey-sections", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSection(ctx context.Context, sectionID uint, title string, description *string) error {
	body := fiber.Map{"title": title, "description": description}
	return c.do(ctx, fiber.MethodPut, idPath("/api/survey-sections/%d", sectionID), body, nil)
}

func (c *Client) DeleteSection(ctx context.Context, sectionID uint) error {
	return c.do(ctx, fiber.MethodDelete, idPath("/api/survey-sections/%d", sectionID), nil, nil)
}

func (c *Client) CreateQuestion(ctx context.Context, sectionID uint, text string) (*Question, error) {
	var q Question
	body := fiber.Map{"section_id": sectionID, "question_text": text}
	if err := c.do(ctx, fiber.MethodPost, "/api/survey-questions", body, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, questionID uint, text string) error {
	body := fiber.Map{"question_text": text}
	return c.do(ctx, fiber.MethodPut, idPath("/api/survey-questions/%d", questionID), body, nil)
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID uint) error {
	return c.do(ctx, fiber.MethodDelete, idPath("/api/survey-questions/%d", questionID), nil, nil)
}

/* ===================== ASSIGNMENT ===================== */

func (c *Client) CheckSurvey(ctx context.Context, classroomID uint) (*SurveyCheck, error) {
	if classroomID == 0 {
		return nil, ErrMissingParam
	}
	var out SurveyCheck
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/classrooms/%d/check-survey", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignSurvey(ctx context.Context, classroomID, surveyID uint) error {
	if classroomID == 0 {
		return ErrMissingParam
	}
	body := fiber.Map{"survey_id": surveyID}
	return c.do(ctx, fiber.MethodPost, idPath("/api/surveys-assign/%d", classroomID), body, nil)
}

/* ===================== RESPONSES ===================== */

func (c *Client) CheckIfEnrolled(ctx context.Context, classroomID uint) (*EnrollmentCheck, error) {
	if classroomID == 0 {
		return nil, ErrMissingParam
	}
	var out EnrollmentCheck
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/check-if-enrolled/%d", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyResponses(ctx context.Context, classroomID uint) ([]ResponseItem, error) {
	var out struct {
		Responses []ResponseItem `json:"responses"`
	}
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/survey-responses/%d", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return out.Responses, nil
}

func (c *Client) SubmitResponses(ctx context.Context, req SubmitResponses) (*SubmitResult, error) {
	var out SubmitResult
	if err := c.do(ctx, fiber.MethodPost, "/api/survey-responses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

/* ===================== REPORT / CLASSROOM ===================== */

func (c *Client) SurveyReport(ctx context.Context, classroomID uint) (*SurveyReport, error) {
	if classroomID == 0 {
		return nil, ErrMissingParam
	}
	var out SurveyReport
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/classrooms/%d/survey-report", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetClassroom(ctx context.Context, classroomID uint) (*Classroom, error) {
	var out Classroom
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/classrooms/%d", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClassroomEvaluations(ctx context.Context, classroomID uint) (*EvaluationSummary, error) {
	var out EvaluationSummary
	if err := c.do(ctx, fiber.MethodGet, idPath("/api/classrooms-evaluations/%d", classroomID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
