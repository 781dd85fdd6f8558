package colormap

import "testing"

func TestLookupCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"YlOrBr", "ylorbr", "YLORBR", " ylorbr "} {
		cm, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if cm.Name() != "YlOrBr" {
			t.Errorf("Lookup(%q).Name() = %q", name, cm.Name())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	if _, ok := Lookup("no-such-map"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) < 10 {
		t.Fatalf("expected built-in maps, got %d names", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestRefResolve(t *testing.T) {
	t.Parallel()

	cm, err := Named("viridis").Resolve()
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	if cm.Name() != "viridis" {
		t.Errorf("unexpected map: %q", cm.Name())
	}

	// A resolved map wins over the name field.
	cm, err = (Ref{Name: "viridis", Map: Plasma}).Resolve()
	if err != nil {
		t.Fatalf("resolve with both fields: %v", err)
	}
	if cm.Name() != "plasma" {
		t.Errorf("expected resolved map to take precedence, got %q", cm.Name())
	}

	if _, err := Named("bogus").Resolve(); err == nil {
		t.Error("expected error for unknown name")
	}
	if _, err := (Ref{}).Resolve(); err == nil {
		t.Error("expected error for empty ref")
	}
}
