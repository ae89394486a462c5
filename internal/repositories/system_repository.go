package repository

import (
	"context"

	"gorm.io/gorm"

	model "study-planner.com/study-planner/pkg/models"
)

type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

func (r *SystemRepository) Insert(ctx context.Context, system model.LearningSystem) error {
	return r.db.WithContext(ctx).Create(&system).Error
}

func (r *SystemRepository) Update(ctx context.Context, system model.LearningSystem) error {
	return r.db.WithContext(ctx).Save(&system).Error
}

func (r *SystemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.LearningSystem{}, "id = ?", id).Error
}

func (r *SystemRepository) FindByID(ctx context.Context, id string) (*model.LearningSystem, error) {
	var system model.LearningSystem
	err := r.db.WithContext(ctx).First(&system, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

func (r *SystemRepository) List(ctx context.Context) ([]model.LearningSystem, error) {
	var systems []model.LearningSystem
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&systems).Error
	return systems, err
}
