package repository

import (
	"context"
	"errors"
	"time"

	"linktern/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateApplication = errors.New("application already submitted")

type Application struct {
	ID           uuid.UUID
	InternshipID uuid.UUID
	StudentID    string
	CoverLetter  string
	ResumeURL    *string
	Status       string
	CreatedAt    time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) error
	ListByStudent(ctx context.Context, studentID string) ([]Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, internship_id, student_id, cover_letter, resume_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.InternshipID, a.StudentID, a.CoverLetter, a.ResumeURL, a.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateApplication
		}
		return err
	}

	// Listing cards show an application count; best effort, the insert is
	// the source of truth.
	_, _ = r.db.Exec(ctx,
		`UPDATE internships SET applications = applications + 1 WHERE id = $1`,
		a.InternshipID,
	)
	return nil
}

func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, studentID string) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, internship_id, student_id, cover_letter, resume_url, status, created_at
		 FROM applications
		 WHERE student_id = $1
		 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.InternshipID, &a.StudentID, &a.CoverLetter, &a.ResumeURL, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
