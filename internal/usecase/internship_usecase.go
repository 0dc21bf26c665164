package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"linktern/internal/repository"

	"github.com/google/uuid"
)

type InternshipListParams struct {
	Query    string
	Location string
	Limit    int
	Offset   int
}

type InternshipUsecase interface {
	List(ctx context.Context, params InternshipListParams) ([]repository.Internship, error)
	Get(ctx context.Context, id uuid.UUID) (repository.Internship, error)
}

type Internships struct {
	repo   repository.InternshipRepository
	cache  SearchCache
	logger *log.Logger
}

func NewInternshipUsecase(repo repository.InternshipRepository, cache SearchCache, logger *log.Logger) *Internships {
	return &Internships{repo: repo, cache: cache, logger: logger}
}

func (u *Internships) List(ctx context.Context, params InternshipListParams) ([]repository.Internship, error) {
	if params.Limit == 0 {
		params.Limit = 20
	}
	if params.Limit < 0 || params.Limit > 50 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}
	params.Query = strings.TrimSpace(params.Query)
	params.Location = strings.TrimSpace(params.Location)

	cacheable := u.cache != nil && (params.Query != "" || params.Location != "")
	cacheKey := ""
	if cacheable {
		cacheKey = InternshipSearchCacheKey(params)

		var cached []repository.Internship
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Internships] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}

		// One filler per key: losers wait briefly and re-check before
		// hitting the database themselves.
		lockKey := InternshipSearchLockKey(cacheKey)
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && !ok {
			time.Sleep(300 * time.Millisecond)
			hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err == nil && hit {
				return cached, nil
			}
		}
	}

	items, err := u.repo.List(ctx, repository.InternshipFilter{
		Query:    params.Query,
		Location: params.Location,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := u.cache.SetJSON(ctx, cacheKey, items, 0); err == nil && u.logger != nil {
			u.logger.Printf("[Internships] Cache SET: %s", cacheKey)
		}
	}

	return items, nil
}

func (u *Internships) Get(ctx context.Context, id uuid.UUID) (repository.Internship, error) {
	return u.repo.GetByID(ctx, id)
}
