package repository

import (
	"context"
	"errors"
	"time"

	"linktern/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInternshipNotFound = errors.New("internship not found")

type Internship struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	Type         string
	Duration     string
	Salary       string
	Description  string
	Skills       []string
	PostedAt     *time.Time
	Applications int
	Logo         string
}

type InternshipFilter struct {
	// Query matches title, company name or any skill, case-insensitive
	// substring.
	Query    string
	Location string
	Limit    int
	Offset   int
}

type InternshipRepository interface {
	List(ctx context.Context, f InternshipFilter) ([]Internship, error)
	GetByID(ctx context.Context, id uuid.UUID) (Internship, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresInternshipRepository struct {
	db database.DB
}

func NewPostgresInternshipRepository(db database.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{db: db}
}

func (r *PostgresInternshipRepository) List(ctx context.Context, f InternshipFilter) ([]Internship, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, type, duration, salary,
		        description, skills, posted_at, applications, logo
		 FROM internships
		 WHERE ($1 = '' OR title ILIKE '%' || $1 || '%'
		        OR company ILIKE '%' || $1 || '%'
		        OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE '%' || $1 || '%'))
		   AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		 ORDER BY posted_at DESC NULLS LAST, id
		 LIMIT $3 OFFSET $4`,
		f.Query, f.Location, limit, offset,
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

func (r *PostgresInternshipRepository) GetByID(ctx context.Context, id uuid.UUID) (Internship, error) {
	var it Internship
	row := r.db.QueryRow(ctx,
		`SELECT id, title, company, location, type, duration, salary,
		        description, skills, posted_at, applications, logo
		 FROM internships WHERE id = $1`,
		id,
	)
	err := row.Scan(
		&it.ID, &it.Title, &it.Company, &it.Location, &it.Type, &it.Duration,
		&it.Salary, &it.Description, &it.Skills, &it.PostedAt, &it.Applications, &it.Logo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Internship{}, ErrInternshipNotFound
		}
		return Internship{}, err
	}
	return it, nil
}

func (r *PostgresInternshipRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM internships WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
