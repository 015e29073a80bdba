// Package storage opens the relational database and provides the
// repositories the HTTP layer persists through.
package storage

import (
	"errors"
	"strings"

	"calc-service/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrOwnerNotFound = errors.New("owner user does not exist")
)

// Open opens the sqlite database at dsn and migrates the schema. Foreign
// keys are off by default in sqlite, so the pragma is forced through the
// DSN unless the caller already set it.
func Open(dsn string) (*gorm.DB, error) {
	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// Every pooled connection to :memory: gets its own database;
		// keep a single connection so the schema stays visible.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Calculation{}); err != nil {
		return nil, err
	}
	return db, nil
}

// uniqueViolation maps a constraint failure to the repository sentinel for
// the violated column. The sqlite driver names the column in the error text.
func uniqueViolation(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "username"):
		return ErrUsernameTaken
	case strings.Contains(msg, "email"):
		return ErrEmailTaken
	default:
		return err
	}
}

// foreignKeyViolation maps a failed owner-reference check to its sentinel.
func foreignKeyViolation(err error) error {
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return ErrOwnerNotFound
	}
	return err
}
