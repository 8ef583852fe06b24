package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/xurshid686/student-track/internal/dbx"
	"github.com/xurshid686/student-track/internal/server/migrations"
	"github.com/xurshid686/student-track/internal/server/repositories/authevents"
	"github.com/xurshid686/student-track/internal/server/repositories/resources"
	"github.com/xurshid686/student-track/internal/server/repositories/students"
	"github.com/xurshid686/student-track/internal/server/repositories/tasks"
	"github.com/xurshid686/student-track/internal/server/repositories/users"
)

// PostgresRepositoryManager connects lazily: constructing it is cheap and
// the actual open/ping/migrate happens on the first Init call, guarded by
// sync.Once so racing requests share one connection attempt.
type PostgresRepositoryManager struct {
	dsn string

	once    sync.Once
	db      *sql.DB
	initErr error
}

func NewPostgresRepositoryManager(dsn string) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{dsn: dsn}
}

func (m *PostgresRepositoryManager) Init(ctx context.Context) error {
	m.once.Do(func() {
		db, err := sql.Open("pgx", m.dsn)
		if err != nil {
			m.initErr = fmt.Errorf("db open error: %w", err)
			return
		}

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			m.initErr = fmt.Errorf("db ping error: %w", err)
			return
		}

		m.db = db
		m.initErr = m.runMigrations(ctx)
	})
	return m.initErr
}

func (m *PostgresRepositoryManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration dialect error: %w", err)
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Conn returns the shared handle; nil until Init succeeds.
func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Students(db dbx.DBTX) students.Repository {
	return students.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Resources(db dbx.DBTX) resources.Repository {
	return resources.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AuthEvents(db dbx.DBTX) authevents.Repository {
	return authevents.NewPostgresRepository(db)
}
