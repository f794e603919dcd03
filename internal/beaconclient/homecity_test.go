package beaconclient

import "testing"

func TestHomeCityStore(t *testing.T) {
	store, err := NewHomeCityStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewHomeCityStore() error = %v", err)
	}

	if got := store.Load(); got != "" {
		t.Errorf("Load() before save = %q, want empty", got)
	}

	if err := store.Save("Berlin"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := store.Load(); got != "Berlin" {
		t.Errorf("Load() = %q, want Berlin", got)
	}

	// Saving blank keeps the previous value.
	if err := store.Save("   "); err != nil {
		t.Fatalf("Save(blank) error = %v", err)
	}
	if got := store.Load(); got != "Berlin" {
		t.Errorf("Load() after blank save = %q, want Berlin", got)
	}

	if err := store.Save("Vancouver"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := store.Load(); got != "Vancouver" {
		t.Errorf("Load() = %q, want Vancouver", got)
	}
}
