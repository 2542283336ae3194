package sequence

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gifmaker/parallel"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

func TestDumpCreatesFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	frames := Frames{solid(3, 3, color.Black), solid(3, 3, color.White)}

	if err := frames.Dump(dir, nil, nil); err != nil {
		t.Fatalf("Dump error: %v", err)
	}

	if got, want := listDir(t, dir), []string{"0.png", "1.png"}; !slices.Equal(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}

	f, err := os.Open(filepath.Join(dir, "1.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode 1.png: %v", err)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xFFFF {
		t.Errorf("1.png should be white, got r=%#x", r)
	}
}

func TestDumpClearsExistingFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0.png", "1.png", "2.png", "stale.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	pool := parallel.Start(2)
	frames := Frames{solid(2, 2, color.Black)}
	if err := frames.Dump(dir, pool.Do, pool.Wait); err != nil {
		t.Fatalf("Dump error: %v", err)
	}
	pool.Wait(true)

	if got, want := listDir(t, dir), []string{"0.png"}; !slices.Equal(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
}

func TestDumpRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := (Frames{solid(1, 1, color.Black)}).Dump(path, nil, nil); err == nil {
		t.Fatal("expected error when the temp path is a file")
	}
}
