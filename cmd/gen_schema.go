package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/lqh2307/mapproxy/pkg/types"
	"github.com/spf13/cobra"
)

// NewGenSchemaCommand creates the `gen-schema` command for generating JSON
// Schema for the configuration types.
func NewGenSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "gen-schema",
		Short:  "Generate JSON Schema for the configuration types (hidden)",
		Hidden: true,
		RunE:   runGenSchema,
	}
	return cmd
}

// runGenSchema generates a JSON Schema for each configuration type and
// writes them to the working directory.
func runGenSchema(cmd *cobra.Command, args []string) error {
	targets := map[string]interface{}{
		"mapproxy.schema.json": &types.MainConfig{},
		"seed.schema.json":     &types.SeedingConfig{},
		"mpboot.schema.json":   &types.Options{},
	}

	reflector := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	for schemaPath, target := range targets {
		schema := reflector.Reflect(target)

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}

		if err := os.WriteFile(schemaPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", schemaPath, err)
		}

		logger.Println("Schema generated at", schemaPath)
	}

	return nil
}
