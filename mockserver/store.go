package mockserver

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Punch is a stored time-record submission.
type Punch struct {
	ID          uint   `gorm:"primaryKey"`
	EmployeeKey string `gorm:"index"`
	Date        string `gorm:"index"` // yyyy-MM-dd
	Time        time.Time
	Code        string // wire literal "1".."4"
}

// OpenStore opens (and migrates) the sqlite punch store. An empty dsn keeps
// everything in memory, which is what the tests use.
func OpenStore(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&Punch{}); err != nil {
		return nil, fmt.Errorf("migrate punch store: %w", err)
	}
	return db, nil
}
