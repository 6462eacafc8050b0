package models

// Category is a storefront section. The list is loaded from a configuration
// file at startup; items reference a category by name only, there is no
// category table.
type Category struct {
	Name        string `json:"name" yaml:"name"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
}
