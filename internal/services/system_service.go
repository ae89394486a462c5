package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study-planner.com/study-planner/internal/ai"
	apperrors "study-planner.com/study-planner/internal/errors"
	"study-planner.com/study-planner/internal/planner"
	repository "study-planner.com/study-planner/internal/repositories"
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

// ModuleGenerator is the content collaborator slice the service needs.
type ModuleGenerator interface {
	GenerateModules(ctx context.Context, title, syllabus string) ([]ai.ProposedModule, error)
}

type SystemService struct {
	systems   *repository.SystemRepository
	modules   *repository.ModuleRepository
	tasks     *repository.TaskRepository
	generator ModuleGenerator
}

func NewSystemService(
	systems *repository.SystemRepository,
	modules *repository.ModuleRepository,
	tasks *repository.TaskRepository,
	generator ModuleGenerator,
) *SystemService {
	return &SystemService{
		systems:   systems,
		modules:   modules,
		tasks:     tasks,
		generator: generator,
	}
}

func (s *SystemService) CreateSystem(ctx context.Context, title, description, deadline string) (*model.LearningSystem, error) {
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	system := model.LearningSystem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Status:      constants.DefaultSystemStatus,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.systems.Insert(ctx, system); err != nil {
		return nil, apperrors.Backend("insert system", err)
	}
	return &system, nil
}

// GetSystem loads one system enriched with its modules, their tasks and the
// derived summary figures. The summary reflects the snapshot at this load;
// later edits are not folded in until the next load.
func (s *SystemService) GetSystem(ctx context.Context, id string) (*model.LearningSystem, []model.SystemModule, error) {
	system, err := s.systems.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrSystemNotFound
		}
		return nil, nil, apperrors.Backend("find system", err)
	}

	modules, err := s.modulesWithTasks(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	summary := planner.SystemSummary(modules)
	system.Summary = &summary
	return system, modules, nil
}

// ListSystems returns all systems, each enriched with its derived summary.
func (s *SystemService) ListSystems(ctx context.Context) ([]model.LearningSystem, error) {
	systems, err := s.systems.List(ctx)
	if err != nil {
		return nil, apperrors.Backend("list systems", err)
	}

	for i := range systems {
		modules, err := s.modulesWithTasks(ctx, systems[i].ID)
		if err != nil {
			return nil, err
		}
		summary := planner.SystemSummary(modules)
		systems[i].Summary = &summary
	}
	return systems, nil
}

func (s *SystemService) UpdateSystem(ctx context.Context, system model.LearningSystem) (*model.LearningSystem, error) {
	current, err := s.systems.FindByID(ctx, system.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, apperrors.Backend("find system", err)
	}

	system.CreatedAt = current.CreatedAt
	system.Summary = nil
	if err := s.systems.Update(ctx, system); err != nil {
		return nil, apperrors.Backend("update system", err)
	}
	return &system, nil
}

// DeleteSystem removes the system together with its modules and tasks.
func (s *SystemService) DeleteSystem(ctx context.Context, id string) error {
	if _, err := s.systems.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSystemNotFound
		}
		return apperrors.Backend("find system", err)
	}

	if err := s.tasks.DeleteBySystem(ctx, id); err != nil {
		return apperrors.Backend("delete system tasks", err)
	}
	if err := s.modules.DeleteBySystem(ctx, id); err != nil {
		return apperrors.Backend("delete system modules", err)
	}
	if err := s.systems.Delete(ctx, id); err != nil {
		return apperrors.Backend("delete system", err)
	}
	return nil
}

func (s *SystemService) AddModule(ctx context.Context, systemID, title, description string) (*model.SystemModule, error) {
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if _, err := s.systems.FindByID(ctx, systemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, apperrors.Backend("find system", err)
	}

	existing, err := s.modules.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, apperrors.Backend("list modules", err)
	}

	module := model.SystemModule{
		ID:          uuid.NewString(),
		SystemID:    systemID,
		Title:       title,
		Description: description,
		Position:    len(existing),
	}
	if err := s.modules.Insert(ctx, module); err != nil {
		return nil, apperrors.Backend("insert module", err)
	}
	return &module, nil
}

// SetModuleCompleted sets the manual completion flag; it is never derived
// from the module's tasks.
func (s *SystemService) SetModuleCompleted(ctx context.Context, moduleID string, completed bool) (*model.SystemModule, error) {
	module, err := s.modules.FindByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, apperrors.Backend("find module", err)
	}

	module.IsCompleted = completed
	if err := s.modules.Update(ctx, *module); err != nil {
		return nil, apperrors.Backend("update module", err)
	}
	return module, nil
}

// Generate asks the content collaborator for modules and tasks from a
// syllabus and attaches them to the system. Failure skips enrichment: the
// system stays as created and the caller is told nothing was added.
func (s *SystemService) Generate(ctx context.Context, systemID, syllabus string) ([]model.SystemModule, bool, error) {
	system, err := s.systems.FindByID(ctx, systemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrSystemNotFound
		}
		return nil, false, apperrors.Backend("find system", err)
	}

	proposed, err := s.generator.GenerateModules(ctx, system.Title, syllabus)
	if err != nil {
		log.Printf("content generation for system %s skipped: %v", systemID, err)
		return nil, true, nil
	}

	created := make([]model.SystemModule, 0, len(proposed))
	for _, pm := range proposed {
		module, err := s.AddModule(ctx, systemID, pm.Title, pm.Description)
		if err != nil {
			log.Printf("generated module %q skipped: %v", pm.Title, err)
			continue
		}

		for _, pt := range pm.Tasks {
			task := model.Task{
				ID:          uuid.NewString(),
				Title:       pt.Title,
				Description: pt.Description,
				Date:        pt.Date,
				Category:    pt.Category,
				Priority:    pt.Priority,
				SystemID:    system.ID,
				SystemName:  system.Title,
				ModuleID:    module.ID,
				Subtasks:    subtasksFromTitles(pt.Subtasks),
				CreatedAt:   time.Now().UTC(),
			}
			if task.Category == "" || !task.Category.IsValid() {
				task.Category = constants.CategoryStudy
			}
			if task.Priority == "" || !task.Priority.IsValid() {
				task.Priority = constants.PriorityMedium
			}
			if err := s.tasks.Insert(ctx, task); err != nil {
				log.Printf("generated task %q skipped: %v", pt.Title, err)
			}
		}
		created = append(created, *module)
	}
	return created, false, nil
}

// ListModules returns a system's modules with their owned tasks loaded.
func (s *SystemService) ListModules(ctx context.Context, systemID string) ([]model.SystemModule, error) {
	if _, err := s.systems.FindByID(ctx, systemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, apperrors.Backend("find system", err)
	}
	return s.modulesWithTasks(ctx, systemID)
}

func (s *SystemService) modulesWithTasks(ctx context.Context, systemID string) ([]model.SystemModule, error) {
	modules, err := s.modules.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, apperrors.Backend("list modules", err)
	}
	for i := range modules {
		tasks, err := s.tasks.ListByModule(ctx, modules[i].ID)
		if err != nil {
			return nil, apperrors.Backend("list module tasks", err)
		}
		modules[i].Tasks = tasks
	}
	return modules, nil
}

func subtasksFromTitles(titles []string) []model.SubTask {
	out := make([]model.SubTask, 0, len(titles))
	for _, title := range titles {
		if title == "" {
			continue
		}
		out = append(out, model.SubTask{
			ID:    uuid.NewString(),
			Title: title,
		})
	}
	return out
}
