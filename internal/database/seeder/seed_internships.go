package seeder

import (
	"context"
	"fmt"
	"time"

	"linktern/internal/database"
)

type InternshipsSeeder struct{}

func (InternshipsSeeder) Name() string { return "internships" }

// Run inserts the starter listings shown on a fresh install. Each insert is
// independent and idempotent, so a partial previous run does not block this one.
func (InternshipsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "internships",
		"id", "title", "company", "location", "type", "duration",
		"salary", "description", "skills", "posted_at", "applications", "logo",
	); err != nil {
		return err
	}

	now := time.Now().UTC()

	items := []struct {
		Title        string
		Company      string
		Location     string
		Type         string
		Duration     string
		Salary       string
		Description  string
		Skills       []string
		PostedAgo    time.Duration
		Applications int
		Logo         string
	}{
		{
			Title:        "Software Engineering Intern",
			Company:      "NEOM Tech",
			Location:     "Riyadh, Saudi Arabia",
			Type:         "Full-time",
			Duration:     "3 months",
			Salary:       "5,000 SAR/month",
			Description:  "Join our innovative software engineering team and work on cutting-edge projects...",
			Skills:       []string{"React", "Node.js", "Python"},
			PostedAgo:    2 * 24 * time.Hour,
			Applications: 24,
			Logo:         "🏢",
		},
		{
			Title:        "Digital Marketing Intern",
			Company:      "Saudi Aramco",
			Location:     "Dhahran, Saudi Arabia",
			Type:         "Part-time",
			Duration:     "6 months",
			Salary:       "4,000 SAR/month",
			Description:  "Support our digital marketing initiatives and gain hands-on experience...",
			Skills:       []string{"Digital Marketing", "Social Media", "Analytics"},
			PostedAgo:    5 * 24 * time.Hour,
			Applications: 18,
			Logo:         "⚡",
		},
		{
			Title:        "Data Science Intern",
			Company:      "STC Group",
			Location:     "Riyadh, Saudi Arabia",
			Type:         "Full-time",
			Duration:     "4 months",
			Salary:       "5,500 SAR/month",
			Description:  "Work with our data science team to analyze customer behavior...",
			Skills:       []string{"Python", "Machine Learning", "SQL"},
			PostedAgo:    7 * 24 * time.Hour,
			Applications: 32,
			Logo:         "📊",
		},
		{
			Title:        "UX Design Intern",
			Company:      "Careem",
			Location:     "Jeddah, Saudi Arabia",
			Type:         "Full-time",
			Duration:     "3 months",
			Salary:       "4,500 SAR/month",
			Description:  "Join our design team and help create amazing user experiences...",
			Skills:       []string{"Figma", "User Research", "Prototyping"},
			PostedAgo:    3 * 24 * time.Hour,
			Applications: 15,
			Logo:         "🎨",
		},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO internships (id, title, company, location, type, duration, salary, description, skills, posted_at, applications, logo)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (title, company) DO NOTHING`,
			it.Title, it.Company, it.Location, it.Type, it.Duration,
			it.Salary, it.Description, it.Skills, now.Add(-it.PostedAgo),
			it.Applications, it.Logo,
		)
		if err != nil {
			return fmt.Errorf("insert %s @ %s: %w", it.Title, it.Company, err)
		}
	}

	return nil
}
