package migrations

import (
	"github.com/Rakhulsr/go-category-admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}
