package seeders

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-category-admin/app/models"
	"github.com/Rakhulsr/go-category-admin/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	services.CategoryService
	names  []string
	failAt int
}

func (s *recordingService) Create(ctx context.Context, name string) (*models.Category, error) {
	if s.failAt > 0 && len(s.names)+1 == s.failAt {
		return nil, errors.New("insert failed")
	}
	s.names = append(s.names, name)
	return &models.Category{Name: name}, nil
}

func TestDBSeed(t *testing.T) {
	svc := &recordingService{}

	created, err := DBSeed(context.Background(), svc, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, created)
	require.Len(t, svc.names, 4)
	for _, name := range svc.names {
		assert.NotEmpty(t, name)
	}
}

func TestDBSeed_StopsOnError(t *testing.T) {
	svc := &recordingService{failAt: 3}

	created, err := DBSeed(context.Background(), svc, 5)
	require.Error(t, err)
	assert.Equal(t, 2, created)
	assert.Contains(t, err.Error(), "seed category 3")
}
