package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/lqh2307/mapproxy/pkg/bootstrap"
	"github.com/lqh2307/mapproxy/pkg/logger"
	"github.com/lqh2307/mapproxy/pkg/types"
	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// NewValidateCommand creates the `validate` command for verifying a MapProxy
// configuration against the JSON Schema and structural checks.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Validate a MapProxy configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().Bool("seed", false, "Validate a seeding configuration instead of a main configuration")

	return cmd
}

// runValidate checks the provided configuration against the JSON Schema and
// reports any validation errors.
func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	seed, _ := cmd.Flags().GetBool("seed")

	var schemaTarget interface{} = &types.MainConfig{}
	if seed {
		schemaTarget = &types.SeedingConfig{}
	}

	reflector := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(schemaTarget)

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("failed to serialize schema: %w", err)
	}

	documentBytes, err := loadYamlAsJson(configPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(documentBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		logger.Println("Configuration validation errors:")
		for _, desc := range result.Errors() {
			logger.Printf(" - %s", desc)
		}
		return fmt.Errorf("validation failed with %d errors", len(result.Errors()))
	}

	if err := validateSyntax(configPath, seed); err != nil {
		return err
	}

	logger.Println("Configuration is valid.")
	return nil
}

// validateSyntax runs the structural checks the schema cannot express, such
// as layers referencing sources that actually exist.
func validateSyntax(configPath string, seed bool) error {
	if seed {
		config, err := bootstrap.LoadSeedingConfig(configPath)
		if err != nil {
			return err
		}
		return bootstrap.ValidateSeedingConfigSyntax(&config)
	}

	config, err := bootstrap.LoadMainConfig(configPath)
	if err != nil {
		return err
	}
	return bootstrap.ValidateMainConfigSyntax(&config)
}

// loadYamlAsJson decodes a YAML document and re-encodes it as JSON so it can
// be fed to the JSON Schema validator.
func loadYamlAsJson(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var document map[string]interface{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	return json.Marshal(document)
}
