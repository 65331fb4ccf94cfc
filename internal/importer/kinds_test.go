package importer

import (
	"sort"
	"testing"
)

func TestKinds(t *testing.T) {
	infos := Kinds()

	if len(infos) != 3 {
		t.Fatalf("Kinds() returned %d kinds, want 3", len(infos))
	}
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key }) {
		t.Error("Kinds() not sorted by key")
	}

	for _, info := range infos {
		if len(info.Columns) != len(info.Fields) {
			t.Errorf("kind %q: %d columns but %d field descriptors",
				info.Key, len(info.Columns), len(info.Fields))
		}
		for i, f := range info.Fields {
			if f.Name != info.Columns[i] {
				t.Errorf("kind %q: field %d named %q, column %q", info.Key, i, f.Name, info.Columns[i])
			}
			if f.Type == "" {
				t.Errorf("kind %q: field %q has no type name", info.Key, f.Name)
			}
		}
	}
}

func TestKindsAssetMetadata(t *testing.T) {
	var assets KindInfo
	for _, info := range Kinds() {
		if info.Key == KindAssets {
			assets = info
		}
	}

	if assets.Label != "Assets" {
		t.Errorf("Label = %q, want %q", assets.Label, "Assets")
	}
	if assets.Fields[0].Name != "tag" || !assets.Fields[0].Required {
		t.Errorf("first field = %+v, want required tag", assets.Fields[0])
	}

	category := assets.Fields[2]
	if category.Name != "category" || category.Default != "other" {
		t.Errorf("category field = %+v, want default %q", category, "other")
	}
	if len(category.Allowed) == 0 {
		t.Error("category field lists no allowed values")
	}
}

func TestColumns(t *testing.T) {
	cols, ok := Columns(KindAssignments)
	if !ok {
		t.Fatal("Columns(assignments) not found")
	}
	want := []string{"asset_id", "user_id", "purpose", "expected_return_at", "notes"}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, cols[i], want[i])
		}
	}

	if _, ok := Columns(Kind("invoices")); ok {
		t.Error("Columns() accepted an unknown kind")
	}
}
