// Package inventory provides the sample shop inventory and decodes
// inventory files. Files are read once at startup; item state is never
// written back.
package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// file is the mapping form of an inventory file. Items is a pointer so a
// mapping without an "items" key can be told apart from an empty list.
type file struct {
	Items *[]types.Item `json:"items" yaml:"items"`
}

var (
	errEmptyDocument = errors.New("empty document")
	errMissingItems  = errors.New(`mapping has no "items" list`)
	errDocumentShape = errors.New("document is neither a list nor a mapping")
)

// Sample returns the demo inventory: one item of each category, the three
// backstage pass bands, and a conjured item.
func Sample() []types.Item {
	return []types.Item{
		types.NewItem("+5 Dexterity Vest", 10, 20),
		types.NewItem(types.NameAgedBrie, 2, 0),
		types.NewItem("Elixir of the Mongoose", 5, 7),
		types.NewItem(types.NameSulfuras, 0, 80),
		types.NewItem(types.NameSulfuras, -1, 80),
		types.NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20),
		types.NewItem("Backstage passes to a TAFKAL80ETC concert", 10, 49),
		types.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49),
		types.NewItem("Conjured Mana Cake", 3, 6),
	}
}

// Load reads an inventory file. YAML (.yaml, .yml) and JSON (.json) are
// supported; the document is either a list of items or a mapping with an
// "items" list. Unknown keys are rejected. Values are stored verbatim
// without range validation.
func Load(path string) ([]types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	var items []types.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		items, err = decodeYAML(data)
	case ".json":
		items, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", types.ErrInvalidInventory, path, err)
	}
	return items, nil
}

func decodeYAML(data []byte) ([]types.Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, errEmptyDocument
	}

	var list []types.Item
	var f file
	var target any
	isList := false
	switch doc.Content[0].Kind {
	case yaml.SequenceNode:
		target, isList = &list, true
	case yaml.MappingNode:
		target = &f
	default:
		return nil, errDocumentShape
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return nil, err
	}
	return pick(isList, list, f)
}

func decodeJSON(data []byte) ([]types.Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmptyDocument
	}

	var list []types.Item
	var f file
	var target any
	isList := false
	switch trimmed[0] {
	case '[':
		target, isList = &list, true
	case '{':
		target = &f
	default:
		return nil, errDocumentShape
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, err
	}
	return pick(isList, list, f)
}

// pick returns the decoded items for whichever document shape was read.
func pick(isList bool, list []types.Item, f file) ([]types.Item, error) {
	if isList {
		return list, nil
	}
	if f.Items == nil {
		return nil, errMissingItems
	}
	return *f.Items, nil
}

// Validate logs a warning for every item that fails the strict
// preconditions and returns the number of violations. The items are not
// modified; the permissive update path processes them as they are.
func Validate(items []types.Item, log zerolog.Logger) int {
	violations := 0
	for i, it := range items {
		if err := rose.Check(it); err != nil {
			violations++
			log.Warn().
				Err(err).
				Int("index", i).
				Str("name", it.Name).
				Int32("quality", it.Quality).
				Msg("item fails precondition")
		}
	}
	return violations
}
