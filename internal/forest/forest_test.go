package forest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zigap/skrinja/internal/tree"
)

func TestLoadMissingFile(t *testing.T) {
	tr, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if s := tr.Stats(); s.TotalBoxes != 0 {
		t.Errorf("expected empty tracker, got %+v", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.json")

	tr := tree.New()
	garage, _ := tr.CreateBox("Garage", "tools live here", "")
	tr.CreateItem("Hammer", "", garage.ID)

	if err := Save(path, tr); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := loaded.Stats(), tr.Stats(); got != want {
		t.Errorf("stats after reload = %+v, want %+v", got, want)
	}
	box, ok := loaded.FindBox(garage.ID)
	if !ok || box.Description != "tools live here" {
		t.Errorf("box after reload = %v, %v", box, ok)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "forest.json")
	if err := Save(path, tree.New()); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("forest file not created: %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.json")
	if err := Save(path, tree.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.json")
	os.WriteFile(path, []byte("{not json"), 0644)

	if _, err := Load(path); err == nil {
		t.Error("expected error for corrupt forest file")
	}
}
