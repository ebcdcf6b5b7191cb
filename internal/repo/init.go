package repo

import (
	"github.com/market-lens/market-lens/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Alert{})
}
