package repo

import (
	"context"

	"github.com/market-lens/market-lens/internal/entity"
	"gorm.io/gorm"
)

type AlertRepo interface {
	Create(ctx context.Context, alert entity.Alert) (int64, error)
	FindAll(ctx context.Context) ([]entity.Alert, error)
	FindUntriggered(ctx context.Context) ([]entity.Alert, error)
	MarkTriggered(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{
		db: db,
	}
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (int64, error) {
	err := r.db.WithContext(ctx).Create(&alert).Error
	if err != nil {
		return 0, err
	}
	return alert.Id, nil
}

func (r *alertRepo) FindAll(ctx context.Context) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) FindUntriggered(ctx context.Context) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).Where("triggered = ?", false).Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// MarkTriggered flips the triggered flag for an untriggered alert.
// It reports false when the alert does not exist or was already triggered,
// so two overlapping check passes cannot both claim the same alert.
func (r *alertRepo) MarkTriggered(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entity.Alert{}).
		Where("id = ? AND triggered = ?", id, false).
		Update("triggered", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *alertRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Alert{}, id).Error
}
