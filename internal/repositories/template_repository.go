package repository

import (
	"context"

	"gorm.io/gorm"

	model "study-planner.com/study-planner/pkg/models"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) List(ctx context.Context) ([]model.Template, error) {
	var templates []model.Template
	err := r.db.WithContext(ctx).Order("id asc").Find(&templates).Error
	return templates, err
}

// FindByID loads a template with its modules and their tasks, ordered by
// catalog position.
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*model.Template, error) {
	var template model.Template
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var modules []model.TemplateModule
	if err := r.db.WithContext(ctx).
		Where("template_id = ?", id).
		Order("position asc").
		Find(&modules).Error; err != nil {
		return nil, err
	}

	for i := range modules {
		var tasks []model.TemplateTask
		if err := r.db.WithContext(ctx).
			Where("template_module_id = ?", modules[i].ID).
			Order("position asc").
			Find(&tasks).Error; err != nil {
			return nil, err
		}
		modules[i].Tasks = tasks
	}

	template.Modules = modules
	return &template, nil
}

// Seed replaces the stored catalog with the given templates. Used by the
// seed command and the test fixtures.
func (r *TemplateRepository) Seed(ctx context.Context, templates []model.Template) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TemplateTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.TemplateModule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Template{}).Error; err != nil {
			return err
		}

		for _, t := range templates {
			record := t
			record.Modules = nil
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			for _, m := range t.Modules {
				moduleRecord := m
				moduleRecord.TemplateID = t.ID
				moduleRecord.Tasks = nil
				if err := tx.Create(&moduleRecord).Error; err != nil {
					return err
				}
				for _, task := range m.Tasks {
					taskRecord := task
					taskRecord.TemplateModuleID = m.ID
					if err := tx.Create(&taskRecord).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
