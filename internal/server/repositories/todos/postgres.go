// Package todos provides the PostgreSQL-backed repository for todo rows.
// Every statement touching existing rows filters by both the row id and the
// owner id, so a miss never reveals whether the row exists for someone else.
package todos

import (
	"context"
	"fmt"

	"github.com/skorolev/taskkeeper/internal/common"
	"github.com/skorolev/taskkeeper/internal/dbx"
	"github.com/skorolev/taskkeeper/internal/server/models"
)

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUser returns all todos owned by userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Todo, error) {
	query :=
		`SELECT id, user_id, title, description, is_completed, created_at FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Todo{}
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.IsCompleted, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts a todo for its owner and fills in the generated id and
// creation timestamp.
func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query :=
		`INSERT INTO todos (user_id, title, description, is_completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		todo.UserID, todo.Title, todo.Description, todo.IsCompleted).Scan(&todo.ID, &todo.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

// Update rewrites a todo's mutable fields. If no row matches both id and
// owner, common.ErrorNotFound is returned and nothing is modified.
func (r *PostgresRepository) Update(ctx context.Context, todo *models.Todo) error {
	query :=
		`UPDATE todos
		 SET title = $1, description = $2, is_completed = $3
		 WHERE id = $4 AND user_id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.IsCompleted, todo.ID, todo.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Delete removes a todo owned by userID. A miss (absent row or foreign owner)
// returns common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID int64) error {
	query :=
		`DELETE FROM todos
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
