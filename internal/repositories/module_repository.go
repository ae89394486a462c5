package repository

import (
	"context"

	"gorm.io/gorm"

	model "study-planner.com/study-planner/pkg/models"
)

type ModuleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) Insert(ctx context.Context, module model.SystemModule) error {
	return r.db.WithContext(ctx).Create(&module).Error
}

func (r *ModuleRepository) Update(ctx context.Context, module model.SystemModule) error {
	return r.db.WithContext(ctx).Save(&module).Error
}

func (r *ModuleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.SystemModule{}, "id = ?", id).Error
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*model.SystemModule, error) {
	var module model.SystemModule
	err := r.db.WithContext(ctx).First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) ListBySystem(ctx context.Context, systemID string) ([]model.SystemModule, error) {
	var modules []model.SystemModule
	err := r.db.WithContext(ctx).
		Where("system_id = ?", systemID).
		Order("position asc").
		Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) DeleteBySystem(ctx context.Context, systemID string) error {
	return r.db.WithContext(ctx).Delete(&model.SystemModule{}, "system_id = ?", systemID).Error
}
