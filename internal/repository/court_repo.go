package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/padel-club/internal/domain"
)

type CourtRepo struct{ db *gorm.DB }

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Court{})
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.Court) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id string) (*domain.Court, error) {
	var c domain.Court
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) List(ctx context.Context, page, size int32, nameQuery string) ([]domain.Court, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Court{})
	if nameQuery != "" {
		qb = qb.Where("name ILIKE ?", "%"+nameQuery+"%")
	}
	var out []domain.Court
	err := qb.Order("name ASC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error
	return out, err
}

func (r *CourtRepo) Update(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Deactivate is the only "delete": reservations keep referencing the
// court, it just stops yielding slots.
func (r *CourtRepo) Deactivate(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Model(&domain.Court{}).
		Where("id = ?", id).
		Update("active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}
