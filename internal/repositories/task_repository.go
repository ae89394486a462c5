package repository

import (
	"context"

	"gorm.io/gorm"

	model "study-planner.com/study-planner/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task model.Task) error {
	return r.db.WithContext(ctx).Create(&task).Error
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) error {
	return r.db.WithContext(ctx).Save(&task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

// ListPlanner returns the planner's own tasks. Module-owned task copies
// carry a module id and are excluded; they are fetched per module instead.
func (r *TaskRepository) ListPlanner(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("module_id = ?", "").
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByModule(ctx context.Context, moduleID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListBySystem(ctx context.Context, systemID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("system_id = ?", systemID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) DeleteBySystem(ctx context.Context, systemID string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "system_id = ?", systemID).Error
}
