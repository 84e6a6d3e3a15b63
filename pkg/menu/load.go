package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a menu definition file:
//
//	containers:
//	  main:
//	    - url: home
//	      title: Home
//	      children:
//	        - url: home/sub
//	          title: Sub
//	    - html: <hr>
type document struct {
	Containers yaml.Node `yaml:"containers"`
}

type itemDef struct {
	URL            string     `yaml:"url"`
	Title          string     `yaml:"title"`
	HTML           string     `yaml:"html"`
	Children       []itemDef  `yaml:"children"`
	LinkAttributes Attributes `yaml:"link_attributes"`
	ListAttributes Attributes `yaml:"list_attributes"`
	ListElement    string     `yaml:"list_element"`

	// raw is set when the html key is present, even with an empty value.
	raw bool
}

var itemFields = map[string]bool{
	"url":             true,
	"title":           true,
	"html":            true,
	"children":        true,
	"link_attributes": true,
	"list_attributes": true,
	"list_element":    true,
}

// UnmarshalYAML rejects unknown keys, which yaml.Node.Decode would otherwise
// drop silently, and records whether the item is a raw one.
func (d *itemDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: menu item must be a mapping", node.Line)
	}

	raw := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !itemFields[key.Value] {
			return fmt.Errorf("line %d: unknown menu item field %q", key.Line, key.Value)
		}
		if key.Value == "html" {
			raw = true
		}
	}

	type plain itemDef
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}
	d.raw = raw
	return nil
}

// LoadFile reads a YAML menu definition file into the registry.
func LoadFile(path string, reg *Registry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	if err := LoadYAML(f, reg); err != nil {
		return fmt.Errorf("failed to load menu file %s: %w", path, err)
	}
	return nil
}

// LoadYAML appends the containers defined in r to the registry, in document
// order. Containers that already exist keep their entries. A container named
// twice in the same document is an error.
func LoadYAML(r io.Reader, reg *Registry) error {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse menu definition: %w", err)
	}

	node := &doc.Containers
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: containers must be a mapping", node.Line)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return fmt.Errorf("line %d: container %q defined twice", node.Content[i].Line, name)
		}
		seen[name] = true

		var defs []itemDef
		if err := node.Content[i+1].Decode(&defs); err != nil {
			return fmt.Errorf("container %q: %w", name, err)
		}

		items, err := buildItems(defs)
		if err != nil {
			return fmt.Errorf("container %q: %w", name, err)
		}

		if err := reg.Get(name).Attach(items); err != nil {
			return fmt.Errorf("container %q: %w", name, err)
		}

		slog.Debug("menu container loaded", "container", name, "items", items.Len())
	}

	return nil
}

func buildItems(defs []itemDef) (*Items, error) {
	items := NewItems()
	for i, def := range defs {
		if def.raw {
			if def.URL != "" || def.Title != "" || len(def.Children) > 0 || len(def.LinkAttributes) > 0 {
				return nil, fmt.Errorf("item %d mixes html with link fields: %w", i, ErrInvalidItem)
			}
			items.Raw(def.HTML, listOptions(def)...)
			continue
		}

		opts := listOptions(def)
		if len(def.LinkAttributes) > 0 {
			opts = append(opts, WithLinkAttributes(def.LinkAttributes))
		}
		if len(def.Children) > 0 {
			children, err := buildItems(def.Children)
			if err != nil {
				return nil, fmt.Errorf("below %q: %w", def.URL, err)
			}
			opts = append(opts, WithChildren(children))
		}

		items.Add(def.URL, def.Title, opts...)
	}

	return items, items.Err()
}

func listOptions(def itemDef) []ItemOption {
	var opts []ItemOption
	if len(def.ListAttributes) > 0 {
		opts = append(opts, WithListAttributes(def.ListAttributes))
	}
	if def.ListElement != "" {
		opts = append(opts, WithListElement(def.ListElement))
	}
	return opts
}
