package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"github.com/Rakhulsr/go-category-admin/app/models"
	"github.com/Rakhulsr/go-category-admin/app/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxSlugAttempts = 5

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptySlug        = errors.New("category name does not produce a slug")
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id string, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo   repositories.CategoryRepositoryImpl
	logger *zap.Logger
	intn   func(int) int
	now    func() time.Time
}

func NewCategoryService(repo repositories.CategoryRepositoryImpl, logger *zap.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
		intn:   rand.Intn,
		now:    time.Now,
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	base := helpers.GenerateSlug(name)
	if base == "" {
		return nil, ErrEmptySlug
	}

	slug, err := s.resolveSlug(ctx, base, "")
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		now := s.now()
		category := &models.Category{
			ID:        uuid.New().String(),
			Name:      name,
			Slug:      slug,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := s.repo.Create(ctx, category)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateSlug) || attempt >= maxSlugAttempts {
			return nil, fmt.Errorf("create category %q: %w", name, err)
		}

		s.logger.Warn("Slug taken at insert time, retrying with a new suffix",
			zap.String("slug", slug),
			zap.Int("attempt", attempt),
		)
		slug = helpers.WithRandomSuffix(base, s.intn)
	}
}

// Update rewrites name and slug of a live category. An unknown id is logged
// and otherwise treated as success.
func (s *categoryService) Update(ctx context.Context, id string, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	base := helpers.GenerateSlug(name)
	if base == "" {
		return nil, ErrEmptySlug
	}

	slug, err := s.resolveSlug(ctx, base, id)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		rows, err := s.repo.UpdateFields(ctx, id, map[string]interface{}{
			"name":       name,
			"slug":       slug,
			"updated_at": s.now(),
		})
		if err == nil {
			if rows == 0 {
				s.logger.Warn("Update matched no live category", zap.String("id", id))
			}
			return &models.Category{ID: id, Name: name, Slug: slug}, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateSlug) || attempt >= maxSlugAttempts {
			return nil, fmt.Errorf("update category %s: %w", id, err)
		}

		s.logger.Warn("Slug taken at update time, retrying with a new suffix",
			zap.String("id", id),
			zap.String("slug", slug),
			zap.Int("attempt", attempt),
		)
		slug = helpers.WithRandomSuffix(base, s.intn)
	}
}

// Delete flags the category as deleted. The row is kept and an unknown id is
// logged rather than reported.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	if rows == 0 {
		s.logger.Warn("Delete matched no category", zap.String("id", id))
	}
	return nil
}

func (s *categoryService) resolveSlug(ctx context.Context, base, excludeID string) (string, error) {
	existing, err := s.repo.FindBySlug(ctx, base, excludeID)
	if err != nil {
		return "", fmt.Errorf("check slug %q: %w", base, err)
	}
	if existing == nil {
		return base, nil
	}
	return helpers.WithRandomSuffix(base, s.intn), nil
}
