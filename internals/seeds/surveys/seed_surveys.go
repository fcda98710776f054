package surveys

import (
	_ "embed"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	model "echomind_backend/internals/features/surveys/surveys/model"
)

//go:embed data_surveys.json
var defaultSurveys []byte

type SurveySeed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sections    []SectionSeed `json:"sections"`
}

type SectionSeed struct {
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
}

// SeedDefaultSurveys memuat template survey bawaan (embedded).
func SeedDefaultSurveys(db *gorm.DB) (int, error) {
	return SeedSurveys(db, defaultSurveys)
}

// SeedSurveys insert survey yang judulnya belum ada (satu transaksi per survey).
func SeedSurveys(db *gorm.DB, raw []byte) (int, error) {
	var seeds []SurveySeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return 0, err
	}

	var existing []string
	if err := db.Model(&model.SurveyModel{}).Pluck("title", &existing).Error; err != nil {
		return 0, err
	}
	existingMap := make(map[string]bool, len(existing))
	for _, t := range existing {
		existingMap[t] = true
	}

	created := 0
	for _, s := range seeds {
		if existingMap[s.Title] {
			log.Debugf("ℹ️ Survey '%s' sudah ada, dilewati.", s.Title)
			continue
		}

		status := model.SurveyStatusActive
		survey := model.SurveyModel{Title: s.Title, Status: &status}
		if s.Description != "" {
			d := s.Description
			survey.Description = &d
		}
		for i, sec := range s.Sections {
			sm := model.SurveySectionModel{Title: sec.Title, OrderIndex: i + 1}
			for j, q := range sec.Questions {
				sm.Questions = append(sm.Questions, model.SurveyQuestionModel{QuestionText: q, OrderIndex: j + 1})
			}
			survey.Sections = append(survey.Sections, sm)
		}

		// gorm membuat association (sections → questions) dalam transaksi yang sama
		if err := db.Create(&survey).Error; err != nil {
			return created, err
		}
		created++
	}
	log.Infof("✅ %d survey template di-seed", created)
	return created, nil
}
