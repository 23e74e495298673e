package lister

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFSLister(t *testing.T) {
	fsys := fstest.MapFS{
		"src/app/app.module.ts":                     {Data: []byte("")},
		"src/app/app.controller.ts":                 {Data: []byte("")},
		"src/app/modules/module1/module1.module.ts": {Data: []byte("")},
		"main.ts": {Data: []byte("")},
	}

	tests := []struct {
		dir  string
		want []string
	}{
		{"src/app", []string{"app.controller.ts", "app.module.ts", "modules"}},
		{"./src/app/", []string{"app.controller.ts", "app.module.ts", "modules"}},
		{"src/app/modules", []string{"module1"}},
		{".", []string{"main.ts", "src"}},
		{"", []string{"main.ts", "src"}},
		{"/", []string{"main.ts", "src"}},
	}

	l := NewFSLister(fsys)
	for _, tc := range tests {
		t.Run(tc.dir, func(t *testing.T) {
			got, err := l.List(context.Background(), tc.dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("(-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFSListerMissingDirectory(t *testing.T) {
	l := NewFSLister(fstest.MapFS{})
	_, err := l.List(context.Background(), "src/app")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestOSLister(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"b.module.ts", "a.component.ts"} {
		if err := os.WriteFile(filepath.Join(base, name), nil, 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(base, "modules"), 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	got, err := OSLister{}.List(context.Background(), filepath.ToSlash(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a.component.ts", "b.module.ts", "modules"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want, +got):\n%s", diff)
	}

	if _, err := (OSLister{}).List(context.Background(), filepath.ToSlash(filepath.Join(base, "missing"))); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestListCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFSLister(fstest.MapFS{}).List(ctx, "."); !errors.Is(err, context.Canceled) {
		t.Fatalf("FSLister: expected context.Canceled, got %v", err)
	}
	if _, err := (OSLister{}).List(ctx, "."); !errors.Is(err, context.Canceled) {
		t.Fatalf("OSLister: expected context.Canceled, got %v", err)
	}
}

func TestListerFunc(t *testing.T) {
	var seen []string
	l := ListerFunc(func(_ context.Context, dir string) ([]string, error) {
		seen = append(seen, dir)
		return []string{"x.module.ts"}, nil
	})
	got, err := l.List(context.Background(), "path/to")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"x.module.ts"}, got); diff != "" {
		t.Fatalf("(-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"path/to"}, seen); diff != "" {
		t.Fatalf("(-want, +got):\n%s", diff)
	}
}
