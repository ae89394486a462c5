package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"study-planner.com/study-planner/internal/ai"
	"study-planner.com/study-planner/internal/catalog"
	repository "study-planner.com/study-planner/internal/repositories"
	"study-planner.com/study-planner/internal/services"
	"study-planner.com/study-planner/internal/store"
	model "study-planner.com/study-planner/pkg/models"
)

type memorySettings struct {
	key string
}

func (m *memorySettings) APIKey(_ context.Context) (string, error) {
	return m.key, nil
}

func (m *memorySettings) SetAPIKey(_ context.Context, key string) error {
	m.key = key
	return nil
}

type noopGenerator struct{}

func (noopGenerator) GenerateModules(_ context.Context, _, _ string) ([]ai.ProposedModule, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *store.TaskStore) {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Task{},
		&model.LearningSystem{},
		&model.SystemModule{},
		&model.Template{},
		&model.TemplateModule{},
		&model.TemplateTask{},
	))
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskRepo := repository.NewTaskRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	require.NoError(t, templateRepo.Seed(context.Background(), catalog.Templates()))

	taskStore := store.NewTaskStore(taskRepo)
	systemService := services.NewSystemService(systemRepo, moduleRepo, taskRepo, noopGenerator{})
	templateService := services.NewTemplateService(templateRepo, systemRepo, moduleRepo, taskRepo, taskStore)

	e := echo.New()
	handler := NewHandler(taskStore, systemService, templateService, &memorySettings{})
	Register(e, handler, 1000)
	return e, taskStore
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateTaskEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"read chapter","date":"2024-03-15","category":"study","priority":"high"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var task model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "2024-03-15", task.Date)
}

func TestCreateTaskEndpoint_Validation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"date":"2024-03-15"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/tasks", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/tasks", `{"title":"x","date":"2024-03-15","start_time":"10:00","end_time":"09:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTasksByDate(t *testing.T) {
	e, _ := newTestServer(t)

	doJSON(e, http.MethodPost, "/tasks", `{"title":"a","date":"2024-03-15"}`)
	doJSON(e, http.MethodPost, "/tasks", `{"title":"b","date":"2024-03-16"}`)

	rec := doJSON(e, http.MethodGet, "/tasks?date=2024-03-15", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int          `json:"count"`
		Tasks []model.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "a", body.Tasks[0].Title)
}

func TestMonthViewEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	doJSON(e, http.MethodPost, "/tasks", `{"title":"a","date":"2024-03-15"}`)

	rec := doJSON(e, http.MethodGet, "/planner/month?date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cells []struct {
			Date  string       `json:"date"`
			Tasks []model.Task `json:"tasks"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cells, 42)

	found := 0
	for _, c := range body.Cells {
		if len(c.Tasks) > 0 {
			assert.Equal(t, "2024-03-15", c.Date)
			found += len(c.Tasks)
		}
	}
	assert.Equal(t, 1, found)
}

func TestUpdateTaskEndpoint_RejectsInvalidPatch(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"a","date":"2024-03-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodPatch, "/tasks/"+created.ID, `{"title":"","date":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/tasks/"+created.ID, `{"category":"cooking"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The entry keeps its pre-patch values.
	rec = doJSON(e, http.MethodGet, "/tasks/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "2024-03-15", got.Date)
}

func TestListTasksEmptyReturnsEmptyArray(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks?date=2024-03-15", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tasks":[]`)
}

func TestMonthViewEndpoint_VisibleCap(t *testing.T) {
	e, _ := newTestServer(t)

	for _, title := range []string{"a", "b", "c", "d"} {
		rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"`+title+`","date":"2024-03-15"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/planner/month?date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cells []struct {
			Date         string       `json:"date"`
			Tasks        []model.Task `json:"tasks"`
			VisibleTasks []model.Task `json:"visible_tasks"`
			Overflow     int          `json:"overflow"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	for _, c := range body.Cells {
		if c.Date == "2024-03-15" {
			assert.Len(t, c.Tasks, 4)
			assert.Len(t, c.VisibleTasks, 3)
			assert.Equal(t, 1, c.Overflow)
		} else {
			assert.Empty(t, c.VisibleTasks)
			assert.Equal(t, 0, c.Overflow)
		}
	}
}

func TestMonthViewEndpoint_BadDate(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/planner/month?date=March", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRescheduleEndpoint(t *testing.T) {
	e, s := newTestServer(t)

	task, err := s.Create(context.Background(), model.Task{Title: "x", Date: "2024-03-15"})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/tasks/"+task.ID+"/reschedule", `{"date":"2024-03-20","hour":9}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var moved model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.Equal(t, "2024-03-20", moved.Date)
	assert.Equal(t, "09:00", moved.StartTime)
	assert.Equal(t, "10:00", moved.EndTime)

	// All-day drop clears the window.
	rec = doJSON(e, http.MethodPost, "/tasks/"+task.ID+"/reschedule", `{"date":"2024-03-21"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	moved = model.Task{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.Empty(t, moved.StartTime)
	assert.Empty(t, moved.EndTime)
}

func TestRescheduleEndpoint_UnknownTask(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/tasks/nope/reschedule", `{"date":"2024-03-20"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTemplateImportEndpoint(t *testing.T) {
	e, s := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/templates/206/import", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, task := range s.List() {
		assert.Equal(t, "206", task.SystemID)
		assert.Equal(t, "Class 6", task.SystemName)
	}
	assert.NotEmpty(t, s.List())
}

func TestSettingsEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/settings/ai-key", `{"api_key":"sk-test"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/settings/ai-key", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sk-test")
}

func TestModuleProgressEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/systems", `{"title":"Algebra"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var system model.LearningSystem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &system))

	rec = doJSON(e, http.MethodPost, "/systems/"+system.ID+"/modules", `{"title":"Linear Equations"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/systems/"+system.ID+"/modules", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Modules []struct {
			Progress float64 `json:"progress"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Modules, 1)
	assert.Zero(t, body.Modules[0].Progress)
}
