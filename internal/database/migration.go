package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/scattter/FundDig/internal/models"
)

// AutoMigrate runs database schema migrations for all models.
// 仅在非 release 模式下由 main 调用：生产库的 schema 由外部管理。
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Plan{},
		&models.Fund{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
