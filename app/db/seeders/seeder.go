package seeders

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-category-admin/app/db/fakers"
	"github.com/Rakhulsr/go-category-admin/app/services"
)

// DBSeed creates count fake categories through the service so seeded slugs
// follow the same collision rules as admin input.
func DBSeed(ctx context.Context, categorySvc services.CategoryService, count int) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		if _, err := categorySvc.Create(ctx, fakers.CategoryName()); err != nil {
			return created, fmt.Errorf("seed category %d: %w", i+1, err)
		}
		created++
	}
	return created, nil
}
