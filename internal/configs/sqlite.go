package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "study-planner.com/study-planner/pkg/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Task{},
		&model.LearningSystem{},
		&model.SystemModule{},
		&model.Template{},
		&model.TemplateModule{},
		&model.TemplateTask{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
