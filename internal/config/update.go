package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/imgdeck/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# imgdeck configuration. See 'imgdeck init --help'.\n"

// Save writes cfg to path as YAML, replacing any existing file.
func Save(cfg *Config, path string) error {
	var buf strings.Builder
	buf.WriteString(fileHeader)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is unexpected - please report it.")
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check the directory exists and is writable")
	}
	return nil
}

// SetValue sets a dotted key like "loading.anchor" in the config file at
// path. It preserves the existing YAML structure and comments, creating
// missing sections as needed. The result must still pass Validate.
func SetValue(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next := findMapValue(node, part)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(part), next)
		}
		if next.Kind != yaml.MappingNode {
			return fmt.Errorf("'%s' is not a section", part)
		}
		node = next
	}

	leaf := parts[len(parts)-1]
	if existing := findMapValue(node, leaf); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = ""
		existing.Content = nil
		existing.Value = value
	} else {
		node.Content = append(node.Content, scalar(leaf), &yaml.Node{Kind: yaml.ScalarNode, Value: value})
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	// Reject values the loader would refuse before touching the file.
	tmp, err := os.CreateTemp("", "imgdeck-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to stage config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(buf.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to stage config: %w", err)
	}
	tmp.Close()

	cfg, err := Load(tmp.Name())
	if err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}

// The yaml shapes below write durations as "200ms" rather than nanoseconds.

type loadingYAML struct {
	Text       string `yaml:"text"`
	Mask       bool   `yaml:"mask"`
	Color      string `yaml:"color,omitempty"`
	Fullscreen bool   `yaml:"fullscreen"`
	ZIndex     int    `yaml:"z_index"`
	Anchor     string `yaml:"anchor,omitempty"`
	Offset     int    `yaml:"offset"`
	Inset      int    `yaml:"inset"`
	Gap        int    `yaml:"gap"`
	ShowDelay  string `yaml:"show_delay"`
	Fade       string `yaml:"fade"`
}

// MarshalYAML implements yaml.Marshaler.
func (c LoadingConfig) MarshalYAML() (interface{}, error) {
	return loadingYAML{
		Text:       c.Text,
		Mask:       c.Mask,
		Color:      c.Color,
		Fullscreen: c.Fullscreen,
		ZIndex:     c.ZIndex,
		Anchor:     c.Anchor,
		Offset:     c.Offset,
		Inset:      c.Inset,
		Gap:        c.Gap,
		ShowDelay:  c.ShowDelay.String(),
		Fade:       c.Fade.String(),
	}, nil
}

type toastYAML struct {
	Duration string `yaml:"duration"`
	Limit    int    `yaml:"limit"`
}

// MarshalYAML implements yaml.Marshaler.
func (c ToastConfig) MarshalYAML() (interface{}, error) {
	return toastYAML{Duration: c.Duration.String(), Limit: c.Limit}, nil
}
