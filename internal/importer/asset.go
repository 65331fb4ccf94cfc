package importer

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Vocabularies shared with the interactive asset forms. Import rows
// are held to exactly the same constraints as direct entry.
var (
	assetCategories = []string{
		"computer", "monitor", "phone", "tablet", "printer",
		"network", "peripheral", "furniture", "software", "vehicle", "other",
	}
	assetStatuses   = []string{"available", "assigned", "maintenance", "retired", "lost"}
	assetConditions = []string{"new", "excellent", "good", "fair", "poor", "broken"}
)

// assetFields is the ordered positional schema for asset rows.
// Slot position is the index in this list.
var assetFields = []FieldSpec{
	{Name: "tag", Type: FieldText, Required: true},
	{Name: "name", Type: FieldText, Required: true},
	{Name: "category", Type: FieldEnum, EnumValues: assetCategories, Default: "other"},
	{Name: "subcategory", Type: FieldText},
	{Name: "serial", Type: FieldText},
	{Name: "model", Type: FieldText},
	{Name: "manufacturer", Type: FieldText},
	{Name: "purchase_date", Type: FieldDate},
	{Name: "purchase_price", Type: FieldNumeric},
	{Name: "current_value", Type: FieldNumeric},
	{Name: "status", Type: FieldEnum, EnumValues: assetStatuses, Default: "available"},
	{Name: "condition", Type: FieldEnum, EnumValues: assetConditions, Default: "good"},
	{Name: "building", Type: FieldText},
	{Name: "floor", Type: FieldText},
	{Name: "room", Type: FieldText},
	{Name: "desk", Type: FieldText},
	{Name: "description", Type: FieldText},
	{Name: "notes", Type: FieldText},
}

var assetFieldIdx = fieldIndex(assetFields)

// AssetCandidate holds one asset row after mapping and defaulting,
// before validation. Monetary fields stay textual so the validator can
// distinguish "absent" from "malformed".
type AssetCandidate struct {
	Tag           string
	Name          string
	Category      string
	Subcategory   string
	Serial        string
	Model         string
	Manufacturer  string
	PurchaseDate  pgtype.Date
	PurchasePrice string
	CurrentValue  string
	Status        string
	Condition     string
	Building      string
	Floor         string
	Room          string
	Desk          string
	Description   string
	Notes         string
}

// Asset is a fully validated asset record, ready for persistence.
type Asset struct {
	Tag           string
	Name          string
	Category      string
	Subcategory   string
	Serial        string
	Model         string
	Manufacturer  string
	PurchaseDate  pgtype.Date
	PurchasePrice pgtype.Numeric
	CurrentValue  pgtype.Numeric
	Status        string
	Condition     string
	Building      string
	Floor         string
	Room          string
	Desk          string
	Description   string
	Notes         string
}

// buildAsset maps a raw row into an asset candidate. Never fails:
// malformed values become missing markers for the validator to judge.
func buildAsset(row RawRow) *AssetCandidate {
	r := newRowReader(row, assetFields, assetFieldIdx)
	return &AssetCandidate{
		Tag:           r.get("tag"),
		Name:          r.get("name"),
		Category:      r.get("category"),
		Subcategory:   r.get("subcategory"),
		Serial:        r.get("serial"),
		Model:         r.get("model"),
		Manufacturer:  r.get("manufacturer"),
		PurchaseDate:  toDate(r.get("purchase_date")),
		PurchasePrice: r.get("purchase_price"),
		CurrentValue:  r.get("current_value"),
		Status:        r.get("status"),
		Condition:     r.get("condition"),
		Building:      r.get("building"),
		Floor:         r.get("floor"),
		Room:          r.get("room"),
		Desk:          r.get("desk"),
		Description:   r.get("description"),
		Notes:         r.get("notes"),
	}
}

// validateAsset applies the asset rule set and coerces the monetary
// fields. A candidate either fully validates or is rejected whole.
func validateAsset(c *AssetCandidate) (*Asset, error) {
	if c.Tag == "" {
		return nil, requiredErr("tag")
	}
	if c.Name == "" {
		return nil, requiredErr("name")
	}
	category, ok := canonicalEnum(c.Category, assetCategories)
	if !ok {
		return nil, enumErr("category", c.Category, assetCategories)
	}
	status, ok := canonicalEnum(c.Status, assetStatuses)
	if !ok {
		return nil, enumErr("status", c.Status, assetStatuses)
	}
	condition, ok := canonicalEnum(c.Condition, assetConditions)
	if !ok {
		return nil, enumErr("condition", c.Condition, assetConditions)
	}

	price, err := coerceNumeric("purchase_price", c.PurchasePrice)
	if err != nil {
		return nil, err
	}
	value, err := coerceNumeric("current_value", c.CurrentValue)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Tag:           c.Tag,
		Name:          c.Name,
		Category:      category,
		Subcategory:   c.Subcategory,
		Serial:        c.Serial,
		Model:         c.Model,
		Manufacturer:  c.Manufacturer,
		PurchaseDate:  c.PurchaseDate,
		PurchasePrice: price,
		CurrentValue:  value,
		Status:        status,
		Condition:     condition,
		Building:      c.Building,
		Floor:         c.Floor,
		Room:          c.Room,
		Desk:          c.Desk,
		Description:   c.Description,
		Notes:         c.Notes,
	}, nil
}

func processAsset(ctx context.Context, gw Gateway, row RawRow) error {
	rec, err := validateAsset(buildAsset(row))
	if err != nil {
		return err
	}
	if err := gw.InsertAsset(ctx, rec); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func checkAsset(row RawRow) error {
	_, err := validateAsset(buildAsset(row))
	return err
}
