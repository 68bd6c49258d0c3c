package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skorolev/taskkeeper/internal/common"
	"github.com/skorolev/taskkeeper/internal/server/models"
	"github.com/skorolev/taskkeeper/internal/server/repositories/repomanager"
)

// TodoService implements per-user todo CRUD. The owner id always comes from
// the verified token claims, never from the request body, so every operation
// is scoped to the caller.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService using repositories.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// List returns the caller's todos, newest first. The result is empty, not
// nil, when the user has no todos.
func (s *TodoService) List(ctx context.Context, userID int64) ([]*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return result, nil
}

// Create inserts a todo owned by userID and returns it with the generated id
// and creation timestamp.
func (s *TodoService) Create(ctx context.Context, userID int64, title, description string, isCompleted bool) (*models.Todo, error) {
	repo := s.repomanager.Todos(s.db)

	todo := &models.Todo{
		UserID:      userID,
		Title:       title,
		Description: description,
		IsCompleted: isCompleted,
	}
	created, err := repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return created, nil
}

// Update rewrites a todo owned by userID. A miss (absent row or a row owned
// by someone else) surfaces as common.ErrorNotFound.
func (s *TodoService) Update(ctx context.Context, id, userID int64, title, description string, isCompleted bool) error {
	repo := s.repomanager.Todos(s.db)

	todo := &models.Todo{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: description,
		IsCompleted: isCompleted,
	}
	if err := repo.Update(ctx, todo); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating todo: %w", err)
	}
	return nil
}

// Delete removes a todo owned by userID, with the same miss semantics as
// Update.
func (s *TodoService) Delete(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Todos(s.db)

	if err := repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting todo: %w", err)
	}
	return nil
}
