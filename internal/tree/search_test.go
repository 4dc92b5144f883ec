package tree

import "testing"

// buildTestForest creates:
//
//	Garage
//	├── Hammer (item)
//	└── Toolbox
//	    └── Drawer
//	        └── Tiny Hammer (item)
//	Kitchen "spare hammer storage"
func buildTestForest(t *testing.T) (*Tracker, map[string]string) {
	t.Helper()
	tr := New()
	ids := make(map[string]string)

	garage, _ := tr.CreateBox("Garage", "", "")
	toolbox, _ := tr.CreateBox("Toolbox", "", garage.ID)
	drawer, _ := tr.CreateBox("Drawer", "", toolbox.ID)
	hammer, _ := tr.CreateItem("Hammer", "", garage.ID)
	tiny, _ := tr.CreateItem("Tiny Hammer", "", drawer.ID)
	kitchen, _ := tr.CreateBox("Kitchen", "spare hammer storage", "")

	ids["garage"] = garage.ID
	ids["toolbox"] = toolbox.ID
	ids["drawer"] = drawer.ID
	ids["hammer"] = hammer.ID
	ids["tiny"] = tiny.ID
	ids["kitchen"] = kitchen.ID
	return tr, ids
}

func TestSearchMatchesNamesAndDescriptions(t *testing.T) {
	tr, ids := buildTestForest(t)

	res := tr.Search("HAMMER")

	// Kitchen matches via its description.
	if len(res.Boxes) != 1 || res.Boxes[0].Box.ID != ids["kitchen"] {
		t.Fatalf("box matches = %v, want kitchen only", res.Boxes)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 item matches, got %d", len(res.Items))
	}
	// Forest traversal order: Garage's direct item before the nested one.
	if res.Items[0].Item.ID != ids["hammer"] || res.Items[1].Item.ID != ids["tiny"] {
		t.Errorf("item order = %q, %q", res.Items[0].Item.ID, res.Items[1].Item.ID)
	}
}

func TestSearchItemPath(t *testing.T) {
	tr, ids := buildTestForest(t)

	res := tr.Search("tiny")
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Items))
	}

	// Full ancestor chain, root to direct parent.
	path := res.Items[0].Path
	want := []string{ids["garage"], ids["toolbox"], ids["drawer"]}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, want %d", len(path), len(want))
	}
	for i, entry := range path {
		if entry.ID != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, entry.ID, want[i])
		}
	}
	if path[0].Name != "Garage" {
		t.Errorf("path[0].Name = %q", path[0].Name)
	}
}

func TestSearchBoxPathExcludesSelf(t *testing.T) {
	tr, ids := buildTestForest(t)

	res := tr.Search("drawer")
	if len(res.Boxes) != 1 {
		t.Fatalf("expected 1 box match, got %d", len(res.Boxes))
	}
	path := res.Boxes[0].Path
	if len(path) != 2 || path[0].ID != ids["garage"] || path[1].ID != ids["toolbox"] {
		t.Errorf("box path = %v, want garage, toolbox", path)
	}

	// Root box match has an empty (not nil) path.
	res = tr.Search("kitchen")
	if len(res.Boxes) != 1 || res.Boxes[0].Path == nil || len(res.Boxes[0].Path) != 0 {
		t.Errorf("root box path = %v, want empty", res.Boxes)
	}
}

func TestSearchNoMatches(t *testing.T) {
	tr, _ := buildTestForest(t)

	res := tr.Search("zeppelin")
	if len(res.Boxes) != 0 || len(res.Items) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestStats(t *testing.T) {
	tr, _ := buildTestForest(t)

	s := tr.Stats()
	if s.TotalBoxes != 4 {
		t.Errorf("TotalBoxes = %d, want 4", s.TotalBoxes)
	}
	if s.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", s.TotalItems)
	}
	if s.RootBoxes != 2 {
		t.Errorf("RootBoxes = %d, want 2", s.RootBoxes)
	}

	empty := New()
	if s := empty.Stats(); s.TotalBoxes != 0 || s.TotalItems != 0 || s.RootBoxes != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}
