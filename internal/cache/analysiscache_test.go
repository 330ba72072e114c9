package cache

import (
	"context"
	"testing"
	"time"
)

func TestAnalysisCache_SaveGet(t *testing.T) {
	tmp := t.TempDir()
	c := &AnalysisCache{Dir: tmp}
	key := KeyFrom([]byte("document bytes"))
	data := []byte(`[{"id":"w1","kind":"WORD","text":"Revenue"}]`)
	if err := c.Save(context.Background(), key, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := c.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if string(got) != string(data) {
		t.Fatalf("mismatch")
	}
}

func TestAnalysisCache_MissIsNotError(t *testing.T) {
	c := &AnalysisCache{Dir: t.TempDir()}
	_, ok, err := c.Get(context.Background(), KeyFrom([]byte("never saved")))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestKeyFrom_Distinct(t *testing.T) {
	if KeyFrom([]byte("a")) == KeyFrom([]byte("b")) {
		t.Fatal("keys collide")
	}
}

func TestPurgeByAge(t *testing.T) {
	tmp := t.TempDir()
	c := &AnalysisCache{Dir: tmp}
	key := KeyFrom([]byte("doc"))
	if err := c.Save(context.Background(), key, []byte("[]")); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Entry is fresh; a generous max age removes nothing
	removed, err := PurgeByAge(tmp, time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
	// A tiny max age expires it
	time.Sleep(20 * time.Millisecond)
	removed, err = PurgeByAge(tmp, time.Millisecond)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok, _ := c.Get(context.Background(), key); ok {
		t.Fatal("expected entry gone")
	}
}

func TestClearDir(t *testing.T) {
	tmp := t.TempDir()
	c := &AnalysisCache{Dir: tmp}
	if err := c.Save(context.Background(), KeyFrom([]byte("doc")), []byte("[]")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ClearDir(tmp); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := c.Get(context.Background(), KeyFrom([]byte("doc"))); ok {
		t.Fatal("expected empty cache after clear")
	}
}
