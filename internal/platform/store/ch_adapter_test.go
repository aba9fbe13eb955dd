package store

import (
	"context"
	"errors"
	"testing"
)

// TestCHAdapter_InsertShapeGuard rejects payloads that aren't [][]any before
// touching the client
func TestCHAdapter_InsertShapeGuard(t *testing.T) {
	t.Parallel()

	a := &clickhouseAdapter{}
	if err := a.Insert(context.Background(), "service_records", struct{}{}); err == nil {
		t.Fatalf("Insert expected shape error, got nil")
	}
}

// TestCHAdapter_PingNil reports an error instead of dereferencing a nil client
func TestCHAdapter_PingNil(t *testing.T) {
	t.Parallel()

	a := &clickhouseAdapter{}
	if err := a.Ping(context.Background()); err == nil {
		t.Fatalf("Ping expected error on nil client")
	}
}

type fakeChRows struct {
	nexts  int
	closed bool
	err    error
}

func (f *fakeChRows) Next() bool             { f.nexts++; return false }
func (f *fakeChRows) Scan(dest ...any) error { return nil }
func (f *fakeChRows) Err() error             { return f.err }
func (f *fakeChRows) Close() error           { f.closed = true; return nil }
func (f *fakeChRows) Columns() []string      { return []string{"alpha", "beta"} }

func TestRowsAdapter_Delegations(t *testing.T) {
	t.Parallel()

	f := &fakeChRows{err: errors.New("boom")}
	r := &rowsAdapter{r: f}

	if r.Next() {
		t.Fatalf("Next should be false on fake")
	}
	var v int
	if err := r.Scan(&v); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if r.Err() == nil {
		t.Fatalf("Err should delegate")
	}
	cols := r.Columns()
	if len(cols) != 2 || cols[0] != "alpha" || cols[1] != "beta" {
		t.Fatalf("Columns mismatch: %#v", cols)
	}
	r.Close()
	if !f.closed {
		t.Fatalf("Close did not delegate to underlying Rows")
	}
}
