package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/padel-club/internal/domain"
)

type PlayerRepo struct{ db *gorm.DB }

func NewPlayerRepo(db *gorm.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Player{})
}

func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PlayerRepo) ByID(ctx context.Context, id string) (*domain.Player, error) {
	var p domain.Player
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepo) List(ctx context.Context, page, size int32, activeOnly bool) ([]domain.Player, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Player{})
	if activeOnly {
		qb = qb.Where("active = ?", true)
	}
	var out []domain.Player
	err := qb.Order("created_at DESC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error
	return out, err
}

func (r *PlayerRepo) Update(ctx context.Context, p *domain.Player) error {
	err := r.db.WithContext(ctx).Save(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PlayerRepo) SetActive(ctx context.Context, id string, active bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("id = ?", id).
		Update("active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
