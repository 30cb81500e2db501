package models

// Category identifies one of the four independent catalog mappings
type Category string

const (
	CategoryBoards    Category = "boards"
	CategoryModules   Category = "modules"
	CategoryFirmwares Category = "firmwares"
	CategoryOptions   Category = "options"
)

// Categories lists every catalog category in display order
var Categories = []Category{CategoryBoards, CategoryModules, CategoryFirmwares, CategoryOptions}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryBoards, CategoryModules, CategoryFirmwares, CategoryOptions:
		return true
	}
	return false
}

// CatalogEntry is a single priced item of a category
type CatalogEntry struct {
	Name     string `json:"name" yaml:"name"`
	Price    int    `json:"price" yaml:"price"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty"`
	Position int    `json:"position" yaml:"-"`
}

// Catalog holds the entries of each category in display order
type Catalog struct {
	Boards    []CatalogEntry `json:"boards" yaml:"boards"`
	Modules   []CatalogEntry `json:"modules" yaml:"modules"`
	Firmwares []CatalogEntry `json:"firmwares" yaml:"firmwares"`
	Options   []CatalogEntry `json:"options" yaml:"options"`
}

// Entries returns the entries of the given category
func (c Catalog) Entries(category Category) []CatalogEntry {
	switch category {
	case CategoryBoards:
		return c.Boards
	case CategoryModules:
		return c.Modules
	case CategoryFirmwares:
		return c.Firmwares
	case CategoryOptions:
		return c.Options
	}
	return nil
}
