package catalog

import (
	"fmt"
	"os"

	"github.com/ogulcanaydogan/smartstock/pkg/model"
	"gopkg.in/yaml.v3"
)

// Catalog is a fixed, read-only sequence of inventory items.
type Catalog struct {
	items []model.InventoryItem
	byID  map[string]int
}

// File is the on-disk YAML layout of a catalog.
type File struct {
	Updated string                `yaml:"updated"`
	Items   []model.InventoryItem `yaml:"items"`
}

// New builds a catalog from items. The slice is copied; duplicate IDs are rejected.
func New(items []model.InventoryItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]model.InventoryItem, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d: missing id", i)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("catalog item %q: duplicate id", item.ID)
		}
		c.byID[item.ID] = i
	}
	return c, nil
}

// LoadFile reads a YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	c, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// LoadFromBytes parses YAML catalog data from raw bytes.
func LoadFromBytes(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("no items defined")
	}
	return New(f.Items)
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// At returns the item at index i. It panics if i is out of range.
func (c *Catalog) At(i int) model.InventoryItem { return c.items[i] }

// Get returns an item by ID.
func (c *Catalog) Get(id string) (model.InventoryItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.InventoryItem{}, false
	}
	return c.items[i], true
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []model.InventoryItem {
	out := make([]model.InventoryItem, len(c.items))
	copy(out, c.items)
	return out
}

// filter returns items matching keep, in catalog order.
func (c *Catalog) filter(keep func(model.InventoryItem) bool) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
