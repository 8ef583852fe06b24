// Package repomanager assembles the per-store repositories over a single
// process-wide database handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/xurshid686/student-track/internal/dbx"
	"github.com/xurshid686/student-track/internal/server/repositories/authevents"
	"github.com/xurshid686/student-track/internal/server/repositories/resources"
	"github.com/xurshid686/student-track/internal/server/repositories/students"
	"github.com/xurshid686/student-track/internal/server/repositories/tasks"
	"github.com/xurshid686/student-track/internal/server/repositories/users"
)

// RepositoryManager owns the connection lifecycle and hands out repository
// instances bound to a handle: the shared *sql.DB for plain calls, or a
// transaction inside dbx.WithTx.
type RepositoryManager interface {
	// Init opens the connection, verifies it, and runs migrations.
	// Concurrent first-time calls are coalesced into a single attempt;
	// later calls return the stored result.
	Init(ctx context.Context) error
	Conn() *sql.DB
	Close() error

	Users(db dbx.DBTX) users.Repository
	Students(db dbx.DBTX) students.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Resources(db dbx.DBTX) resources.Repository
	AuthEvents(db dbx.DBTX) authevents.Repository
}
