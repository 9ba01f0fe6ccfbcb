package db

import (
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todoapi/internal/auth"
	"todoapi/internal/todo"
)

// Connect opens the pool through lib/pq rather than the dialector's default
// pgx driver.
func Connect(dsn string, log logger.Interface) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{Logger: log})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&todo.Todo{},
	); err != nil {
		return err
	}

	stmts := []string{
		// List: where user_id = ? order by created_at desc
		`create index if not exists idx_todos_user_created on todos(user_id, created_at desc, id desc);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
