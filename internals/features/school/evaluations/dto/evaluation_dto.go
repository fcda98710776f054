package dto

import "strings"

type EvaluateRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

func (r *EvaluateRequest) Normalize() {
	if r.Comment != nil {
		v := strings.TrimSpace(*r.Comment)
		if v == "" {
			r.Comment = nil
			return
		}
		r.Comment = &v
	}
}
