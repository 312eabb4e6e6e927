// Package mock provides in-process substitutes for external infrastructure
// used by the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection migrated with the
// application schema. Scenarios call Reset between runs.
type Db struct {
	Conn *gorm.DB
}

func coachModels() []any {
	return []any{
		&model.UserModel{},
		&model.IncomeRecordModel{},
		&model.CashRecordModel{},
		&model.AdviceCardModel{},
		&model.CoachingSettingsModel{},
	}
}

// NewDb opens the shared test database on first call and returns it.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(coachModels()...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return &Db{Conn: conn}
}

// Reset removes all rows from every table, keeping the schema.
func (d *Db) Reset() error {
	for _, m := range coachModels() {
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
