package repository

import (
	"context"

	"linktern/internal/database"

	"github.com/google/uuid"
)

type SavedInternshipRepository interface {
	// Toggle flips the saved state and reports the new state.
	Toggle(ctx context.Context, studentID string, internshipID uuid.UUID) (bool, error)
	ListByStudent(ctx context.Context, studentID string) ([]Internship, error)
}

type PostgresSavedInternshipRepository struct {
	db database.DB
}

func NewPostgresSavedInternshipRepository(db database.DB) *PostgresSavedInternshipRepository {
	return &PostgresSavedInternshipRepository{db: db}
}

func (r *PostgresSavedInternshipRepository) Toggle(ctx context.Context, studentID string, internshipID uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO saved_internships (student_id, internship_id) VALUES ($1, $2)
		 ON CONFLICT (student_id, internship_id) DO NOTHING`,
		studentID, internshipID,
	)
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	// Already saved; the toggle removes it.
	_, err = r.db.Exec(ctx,
		`DELETE FROM saved_internships WHERE student_id = $1 AND internship_id = $2`,
		studentID, internshipID,
	)
	if err != nil {
		return false, err
	}
	return false, nil
}

func (r *PostgresSavedInternshipRepository) ListByStudent(ctx context.Context, studentID string) ([]Internship, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.title, i.company, i.location, i.type, i.duration, i.salary,
		        i.description, i.skills, i.posted_at, i.applications, i.logo
		 FROM saved_internships s
		 JOIN internships i ON i.id = s.internship_id
		 WHERE s.student_id = $1
		 ORDER BY s.created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Internship, 0)
	for rows.Next() {
		var it Internship
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Company, &it.Location, &it.Type, &it.Duration,
			&it.Salary, &it.Description, &it.Skills, &it.PostedAt, &it.Applications, &it.Logo,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
