// Package main writes JSON schemas for the YAML data files so that editors can
// validate season, world and loot table definitions while they are authored.
//
// Usage:
//
//	go run ./cmd/seasonschema --out schemas/season.schema.json
//	go run ./cmd/seasonschema --kind loot --out schemas/loot_tables.schema.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/invopop/jsonschema"
)

// schemaKind describes one data file type.
type schemaKind struct {
	target      interface{}
	title       string
	description string
}

var kinds = map[string]schemaKind{
	"season": {
		target:      new(config.SeasonConfig),
		title:       "Resource Run Season",
		description: "Validates data/seasons/<name>.yaml: ground tile set and object groups",
	},
	"world": {
		target:      new(config.GameConfig),
		title:       "Resource Run World",
		description: "Validates data/world.yaml: world size, fade timing, player and inventory settings",
	},
	"loot": {
		target:      new(config.LootTableSet),
		title:       "Resource Run Loot Tables",
		description: "Validates data/loot_tables.yaml",
	},
}

func main() {
	var outPath, kind string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&kind, "kind", "season", "schema to generate: "+strings.Join(kindNames(), ", "))
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schema, err := buildSchema(kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildSchema(kind string) (*jsonschema.Schema, error) {
	k, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q (want one of %s)", kind, strings.Join(kindNames(), ", "))
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(k.target)
	schema.Title = k.title
	schema.Description = k.description
	return schema, nil
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
