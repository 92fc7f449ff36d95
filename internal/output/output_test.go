package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFactorySequentialNames(t *testing.T) {
	base := filepath.Join(t.TempDir(), "foo")
	f := NewFactory(base, "yaml")

	for i := 0; i < 3; i++ {
		out, err := f.Open()
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if got, want := out.Name(), fmt.Sprintf("%s-%d.yaml", base, i); got != want {
			t.Fatalf("name = %q, want %q", got, want)
		}
		if err := out.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
	if f.Count() != 3 {
		t.Fatalf("count = %d, want 3", f.Count())
	}
	names := f.Names()
	if len(names) != 3 || names[0] != base+"-0.yaml" || names[2] != base+"-2.yaml" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestFactoryEmptyExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "foo")
	out, err := NewFactory(base, "").Open()
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	if got, want := out.Name(), base+"-0."; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
}

func TestFileWriteLineAndOverwrite(t *testing.T) {
	base := filepath.Join(t.TempDir(), "doc")
	name := base + "-0.yaml"
	if err := os.WriteFile(name, []byte("stale content that is longer\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := NewFactory(base, "yaml").Open()
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{"a: 1", "", "b: 2\r"} {
		if err := out.WriteLine(l); err != nil {
			t.Fatalf("write %q: %v", l, err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "a: 1\n\nb: 2\r\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestFactoryCreateFailureKeepsCounter(t *testing.T) {
	f := NewFactory(filepath.Join(t.TempDir(), "missing", "dir", "foo"), "yaml")
	if _, err := f.Open(); err == nil {
		t.Fatal("expected create error")
	} else if !strings.HasPrefix(err.Error(), "create output:") {
		t.Fatalf("unexpected error %v", err)
	}
	if f.Count() != 0 || len(f.Names()) != 0 {
		t.Fatalf("counter advanced on failure: %d %v", f.Count(), f.Names())
	}
}
