package repomanager

import (
	"context"
	"database/sql"

	"github.com/skorolev/taskkeeper/internal/dbx"
	"github.com/skorolev/taskkeeper/internal/server/repositories/todos"
	"github.com/skorolev/taskkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}
