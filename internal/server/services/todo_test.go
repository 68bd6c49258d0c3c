package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skorolev/taskkeeper/internal/common"
	"github.com/skorolev/taskkeeper/internal/server/models"
)

func TestTodoList_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	want := []*models.Todo{
		{ID: 2, UserID: 7, Title: "later", CreatedAt: time.Now()},
		{ID: 1, UserID: 7, Title: "earlier", CreatedAt: time.Now().Add(-time.Hour)},
	}
	rm := &fakeRepoManager{td: &fakeTodosRepo{listOut: want}}
	s := NewTodoService(db, rm)

	got, err := s.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestTodoList_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{td: &fakeTodosRepo{listErr: errors.New("db down")}}
	s := NewTodoService(db, rm)

	_, err := s.List(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestTodoCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	created := &models.Todo{ID: 5, UserID: 7, Title: "milk", CreatedAt: time.Now()}
	rm := &fakeRepoManager{td: &fakeTodosRepo{createOut: created}}
	s := NewTodoService(db, rm)

	got, err := s.Create(context.Background(), 7, "milk", "", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.UserID != 7 {
		t.Fatalf("unexpected todo: %+v", got)
	}
}

func TestTodoUpdate_NotOwned(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{td: &fakeTodosRepo{updateErr: common.ErrorNotFound}}
	s := NewTodoService(db, rm)

	err := s.Update(context.Background(), 5, 8, "milk", "", true)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestTodoDelete_NotOwned(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{td: &fakeTodosRepo{deleteErr: common.ErrorNotFound}}
	s := NewTodoService(db, rm)

	err := s.Delete(context.Background(), 5, 8)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestTodoDelete_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{td: &fakeTodosRepo{}}
	s := NewTodoService(db, rm)

	if err := s.Delete(context.Background(), 5, 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
