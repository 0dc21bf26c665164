package dto

import "github.com/google/uuid"

type InternshipResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Duration     string    `json:"duration"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Skills       []string  `json:"skills"`
	PostedDate   string    `json:"posted_date"`
	Applications int       `json:"applications"`
	Logo         string    `json:"logo"`
	Saved        bool      `json:"saved,omitempty"`
}
