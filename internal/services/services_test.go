package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"study-planner.com/study-planner/internal/ai"
	"study-planner.com/study-planner/internal/catalog"
	repository "study-planner.com/study-planner/internal/repositories"
	"study-planner.com/study-planner/internal/store"
	"study-planner.com/study-planner/pkg/constants"
	model "study-planner.com/study-planner/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Task{},
		&model.LearningSystem{},
		&model.SystemModule{},
		&model.Template{},
		&model.TemplateModule{},
		&model.TemplateTask{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

// fakeGenerator returns canned proposals or a canned error.
type fakeGenerator struct {
	modules []ai.ProposedModule
	err     error
}

func (f *fakeGenerator) GenerateModules(_ context.Context, _, _ string) ([]ai.ProposedModule, error) {
	return f.modules, f.err
}

type fixture struct {
	systems   *SystemService
	templates *TemplateService
	planner   *store.TaskStore
	taskRepo  *repository.TaskRepository
}

func setup(t *testing.T, gen ModuleGenerator) fixture {
	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	if err := templateRepo.Seed(context.Background(), catalog.Templates()); err != nil {
		t.Fatalf("failed to seed templates: %v", err)
	}

	planner := store.NewTaskStore(taskRepo)
	return fixture{
		systems:   NewSystemService(systemRepo, moduleRepo, taskRepo, gen),
		templates: NewTemplateService(templateRepo, systemRepo, moduleRepo, taskRepo, planner),
		planner:   planner,
		taskRepo:  taskRepo,
	}
}

func TestTemplateService_ImportStampsPlannerCopies(t *testing.T) {
	f := setup(t, &fakeGenerator{})
	ctx := context.Background()

	template, err := f.templates.GetTemplate(ctx, "206")
	if err != nil {
		t.Fatalf("failed to load template: %v", err)
	}
	if template.Title != "Class 6" {
		t.Fatalf("expected Class 6, got %q", template.Title)
	}

	system, imported, err := f.templates.Import(ctx, "206")
	if err != nil {
		t.Fatalf("failed to import template: %v", err)
	}
	if system.Status != constants.DefaultSystemStatus {
		t.Errorf("expected status %s, got %s", constants.DefaultSystemStatus, system.Status)
	}

	if len(imported) == 0 {
		t.Fatal("expected planner copies")
	}
	seen := map[string]bool{}
	for _, task := range imported {
		if task.SystemID != "206" {
			t.Errorf("planner copy should carry catalog id 206, got %q", task.SystemID)
		}
		if task.SystemName != "Class 6" {
			t.Errorf("planner copy should carry catalog name, got %q", task.SystemName)
		}
		if seen[task.ID] {
			t.Error("planner copies must have distinct ids")
		}
		seen[task.ID] = true
	}

	// Module-owned copies and planner copies are independent rows.
	moduleTasks, err := f.taskRepo.ListBySystem(ctx, system.ID)
	if err != nil {
		t.Fatalf("failed to list system tasks: %v", err)
	}
	for _, task := range moduleTasks {
		if seen[task.ID] {
			t.Error("module-owned copy must not share identity with a planner copy")
		}
	}
}

func TestTemplateService_ImportUnknownTemplate(t *testing.T) {
	f := setup(t, &fakeGenerator{})

	_, _, err := f.templates.Import(context.Background(), "999")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestSystemService_SummaryFromSnapshot(t *testing.T) {
	f := setup(t, &fakeGenerator{})
	ctx := context.Background()

	system, _, err := func() (*model.LearningSystem, []model.SystemModule, error) {
		s, err := f.systems.CreateSystem(ctx, "Algebra", "", "")
		if err != nil {
			return nil, nil, err
		}
		m, err := f.systems.AddModule(ctx, s.ID, "Linear Equations", "")
		if err != nil {
			return nil, nil, err
		}
		for i, completed := range []bool{true, false, false, false} {
			task := model.Task{
				ID:        string(rune('a' + i)),
				Title:     "t",
				Date:      "2024-03-15",
				Category:  constants.CategoryStudy,
				Priority:  constants.PriorityMedium,
				SystemID:  s.ID,
				ModuleID:  m.ID,
				Completed: completed,
			}
			if err := f.taskRepo.Insert(ctx, task); err != nil {
				return nil, nil, err
			}
		}
		return f.systems.GetSystem(ctx, s.ID)
	}()
	if err != nil {
		t.Fatalf("failed to build system: %v", err)
	}

	if system.Summary == nil {
		t.Fatal("expected derived summary")
	}
	if system.Summary.TotalTasks != 4 || system.Summary.CompletedTasks != 1 {
		t.Errorf("unexpected summary: %+v", system.Summary)
	}
	if system.Summary.TimeSpent != 2 || system.Summary.EstimatedTime != 8 {
		t.Errorf("unexpected time figures: %+v", system.Summary)
	}
	if system.Summary.TotalWeeks != 1 {
		t.Errorf("expected 1 week, got %d", system.Summary.TotalWeeks)
	}
}

func TestSystemService_GenerateSkipsOnCollaboratorError(t *testing.T) {
	f := setup(t, &fakeGenerator{err: errors.New("quota exceeded")})
	ctx := context.Background()

	system, err := f.systems.CreateSystem(ctx, "Biology", "", "")
	if err != nil {
		t.Fatalf("failed to create system: %v", err)
	}

	modules, skipped, err := f.systems.Generate(ctx, system.ID, "cells, genetics")
	if err != nil {
		t.Fatalf("collaborator failure must not fail the call: %v", err)
	}
	if !skipped {
		t.Error("expected enrichment to be skipped")
	}
	if len(modules) != 0 {
		t.Error("expected no modules on skip")
	}

	// The system itself is untouched.
	if _, _, err := f.systems.GetSystem(ctx, system.ID); err != nil {
		t.Errorf("system must survive a failed enrichment: %v", err)
	}
}

func TestSystemService_GenerateCreatesModulesAndTasks(t *testing.T) {
	gen := &fakeGenerator{
		modules: []ai.ProposedModule{
			{
				Title:       "Cell Biology",
				Description: "Structure and function of cells",
				Tasks: []ai.ProposedTask{
					{Title: "Read about organelles", Date: "2024-05-01", Category: constants.CategoryStudy, Priority: constants.PriorityHigh, Subtasks: []string{"nucleus", "mitochondria"}},
					{Title: "Draw a cell diagram", Date: "2024-05-02"},
				},
			},
		},
	}
	f := setup(t, gen)
	ctx := context.Background()

	system, err := f.systems.CreateSystem(ctx, "Biology", "", "")
	if err != nil {
		t.Fatalf("failed to create system: %v", err)
	}

	modules, skipped, err := f.systems.Generate(ctx, system.ID, "syllabus text")
	if err != nil {
		t.Fatalf("failed to generate: %v", err)
	}
	if skipped {
		t.Fatal("expected enrichment to run")
	}
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}

	listed, err := f.systems.ListModules(ctx, system.ID)
	if err != nil {
		t.Fatalf("failed to list modules: %v", err)
	}
	if len(listed) != 1 || len(listed[0].Tasks) != 2 {
		t.Fatalf("expected 1 module with 2 tasks, got %+v", listed)
	}

	// Missing category/priority fall back to sensible defaults.
	second := listed[0].Tasks[1]
	if second.Category != constants.CategoryStudy || second.Priority != constants.PriorityMedium {
		t.Errorf("unexpected defaults: %s %s", second.Category, second.Priority)
	}
}

func TestSystemService_DeleteCascades(t *testing.T) {
	f := setup(t, &fakeGenerator{})
	ctx := context.Background()

	system, _, err := f.templates.Import(ctx, "207")
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	if err := f.systems.DeleteSystem(ctx, system.ID); err != nil {
		t.Fatalf("failed to delete system: %v", err)
	}

	tasks, err := f.taskRepo.ListBySystem(ctx, system.ID)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no module-owned tasks after delete, got %d", len(tasks))
	}

	// Planner copies carry the catalog identity and survive the delete.
	if len(f.planner.List()) == 0 {
		t.Error("planner copies must survive system deletion")
	}
}
