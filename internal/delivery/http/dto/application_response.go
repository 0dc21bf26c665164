package dto

import "github.com/google/uuid"

type ApplicationResponse struct {
	ID           uuid.UUID `json:"id"`
	InternshipID uuid.UUID `json:"internship_id"`
	CoverLetter  string    `json:"cover_letter"`
	ResumeURL    *string   `json:"resume_url,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  string    `json:"submitted_at"`
}
