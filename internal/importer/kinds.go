package importer

// kinds.go declares the closed set of import kinds. Dispatch is a
// tagged union over {assets, users, assignments}: one builder and one
// validator per tag, bound here and selected once at the start of a
// run. New kinds and fields are additive entries in this file.

import (
	"context"
	"sort"
)

// kindSpec bundles everything needed to process rows of one kind.
type kindSpec struct {
	Key    Kind
	Label  string
	Fields []FieldSpec

	// Process runs build, validate, persist for one row.
	Process func(ctx context.Context, gw Gateway, row RawRow) error

	// Check runs build and validate only, for dry-run previews.
	Check func(row RawRow) error
}

var kinds = map[Kind]kindSpec{
	KindAssets: {
		Key:     KindAssets,
		Label:   "Assets",
		Fields:  assetFields,
		Process: processAsset,
		Check:   checkAsset,
	},
	KindUsers: {
		Key:     KindUsers,
		Label:   "Users",
		Fields:  userFields,
		Process: processUser,
		Check:   checkUser,
	},
	KindAssignments: {
		Key:     KindAssignments,
		Label:   "Assignments",
		Fields:  assignmentFields,
		Process: processAssignment,
		Check:   checkAssignment,
	},
}

// KindInfo describes one import kind for listing and template endpoints.
type KindInfo struct {
	Key     Kind        `json:"key"`
	Label   string      `json:"label"`
	Columns []string    `json:"columns"`
	Fields  []FieldInfo `json:"fields"`
}

// FieldInfo describes one column of a kind's row schema.
type FieldInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Allowed  []string `json:"allowed,omitempty"`
	Default  string   `json:"default,omitempty"`
}

// Kinds returns the supported import kinds sorted by key.
func Kinds() []KindInfo {
	infos := make([]KindInfo, 0, len(kinds))
	for _, ks := range kinds {
		infos = append(infos, KindInfo{
			Key:     ks.Key,
			Label:   ks.Label,
			Columns: columnNames(ks.Fields),
			Fields:  fieldInfos(ks.Fields),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

func fieldInfos(fields []FieldSpec) []FieldInfo {
	infos := make([]FieldInfo, len(fields))
	for i, f := range fields {
		infos[i] = FieldInfo{
			Name:     f.Name,
			Type:     fieldTypeName(f.Type),
			Required: f.Required,
			Allowed:  f.EnumValues,
			Default:  f.Default,
		}
	}
	return infos
}

// Columns returns the ordered column names for a kind.
// Returns false for an unrecognized kind.
func Columns(kind Kind) ([]string, bool) {
	ks, ok := kinds[kind]
	if !ok {
		return nil, false
	}
	return columnNames(ks.Fields), true
}

func columnNames(fields []FieldSpec) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}
	return cols
}
