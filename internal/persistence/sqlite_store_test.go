package persistence

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ozflow/ozflow/pkg/api"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	return store
}

func TestSQLiteStore_SaveGetDelete(t *testing.T) {
	store := newTestSQLiteStore(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	def := sampleDefinition("def-1", "report", created)
	if err := store.SaveDefinition(def); err != nil {
		t.Fatalf("SaveDefinition failed: %v", err)
	}

	got, err := store.GetDefinition("def-1")
	if err != nil {
		t.Fatalf("GetDefinition failed: %v", err)
	}
	if got.WorkflowName != "report" {
		t.Fatalf("unexpected workflow name: %s", got.WorkflowName)
	}
	if string(got.Document) != string(def.Document) {
		t.Fatalf("unexpected document: %s", got.Document)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created-at: %v", got.CreatedAt)
	}

	if err := store.DeleteDefinition("def-1"); err != nil {
		t.Fatalf("DeleteDefinition failed: %v", err)
	}
	if _, err := store.GetDefinition("def-1"); !errors.Is(err, ErrDefinitionNotFound) {
		t.Fatalf("expected ErrDefinitionNotFound, got %v", err)
	}
	if err := store.DeleteDefinition("def-1"); !errors.Is(err, ErrDefinitionNotFound) {
		t.Fatalf("expected ErrDefinitionNotFound, got %v", err)
	}
}

func TestSQLiteStore_ListFilterAndOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	defs := []*api.Definition{
		sampleDefinition("def-1", "report", base),
		sampleDefinition("def-2", "report", base.Add(time.Hour)),
		sampleDefinition("def-3", "ingest", base.Add(2*time.Hour)),
	}
	for _, def := range defs {
		if err := store.SaveDefinition(def); err != nil {
			t.Fatalf("SaveDefinition failed: %v", err)
		}
	}

	all, err := store.ListDefinitions(api.DefinitionListOptions{})
	if err != nil {
		t.Fatalf("ListDefinitions failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(all))
	}
	if all[0].ID != "def-3" || all[1].ID != "def-2" || all[2].ID != "def-1" {
		t.Fatalf("unexpected order: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}

	reports, err := store.ListDefinitions(api.DefinitionListOptions{WorkflowName: "report", Limit: 1})
	if err != nil {
		t.Fatalf("ListDefinitions failed: %v", err)
	}
	if len(reports) != 1 || reports[0].ID != "def-2" {
		t.Fatalf("unexpected filtered result")
	}
}

func TestSQLiteStore_DuplicateIDFails(t *testing.T) {
	store := newTestSQLiteStore(t)

	def := sampleDefinition("def-1", "report", time.Now().UTC())
	if err := store.SaveDefinition(def); err != nil {
		t.Fatalf("SaveDefinition failed: %v", err)
	}
	if err := store.SaveDefinition(def); err == nil {
		t.Fatalf("expected duplicate insert to fail")
	}
}
