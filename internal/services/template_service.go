package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "study-planner.com/study-planner/internal/errors"
	repository "study-planner.com/study-planner/internal/repositories"
	"study-planner.com/study-planner/internal/store"
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

type TemplateService struct {
	templates *repository.TemplateRepository
	systems   *repository.SystemRepository
	modules   *repository.ModuleRepository
	tasks     *repository.TaskRepository
	planner   *store.TaskStore
}

func NewTemplateService(
	templates *repository.TemplateRepository,
	systems *repository.SystemRepository,
	modules *repository.ModuleRepository,
	tasks *repository.TaskRepository,
	planner *store.TaskStore,
) *TemplateService {
	return &TemplateService{
		templates: templates,
		systems:   systems,
		modules:   modules,
		tasks:     tasks,
		planner:   planner,
	}
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.Template, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, apperrors.Backend("list templates", err)
	}
	return templates, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Backend("find template", err)
	}
	return template, nil
}

// Import instantiates a template into a new learning system with module and
// task copies, then pushes the task copies into the planner store stamped
// with the template's catalog id and title (the planner's denormalized
// system identity). Every copy gets a fresh id; nothing shares identity with
// the catalog rows.
func (s *TemplateService) Import(ctx context.Context, templateID string) (*model.LearningSystem, []model.Task, error) {
	template, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, nil, err
	}

	system := model.LearningSystem{
		ID:          uuid.NewString(),
		Title:       template.Title,
		Description: template.Description,
		Status:      constants.DefaultSystemStatus,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.systems.Insert(ctx, system); err != nil {
		return nil, nil, apperrors.Backend("insert system", err)
	}

	var plannerInput []model.Task
	for pos, tm := range template.Modules {
		module := model.SystemModule{
			ID:          uuid.NewString(),
			SystemID:    system.ID,
			Title:       tm.Title,
			Description: tm.Description,
			Position:    pos,
		}
		if err := s.modules.Insert(ctx, module); err != nil {
			return nil, nil, apperrors.Backend("insert module", err)
		}

		for _, tt := range tm.Tasks {
			task := tt.PlannerTask()
			task.ID = uuid.NewString()
			task.SystemID = system.ID
			task.SystemName = system.Title
			task.ModuleID = module.ID
			task.CreatedAt = time.Now().UTC()
			if err := s.tasks.Insert(ctx, task); err != nil {
				return nil, nil, apperrors.Backend("insert task", err)
			}

			plannerInput = append(plannerInput, tt.PlannerTask())
		}
	}

	// The planner copies carry the catalog identity, matching how the list
	// of available templates labels imported work.
	imported := s.planner.ImportFromTemplate(ctx, template.ID, template.Title, plannerInput)
	return &system, imported, nil
}
