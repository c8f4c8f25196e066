package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/floaty/internal/cli/styles"
	"github.com/bnema/floaty/internal/infrastructure/config"
)

var (
	configJSON        bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration status and key reference",
	Long: `Display the config file path and every configuration key with its
type, default and accepted values.

Keys can also be set through FLOATY_* environment variables, for example
FLOATY_ANIMATION_DURATION_MS=500 or FLOATY_LOG_LEVEL=debug.`,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write the default configuration to the config file path. An existing file is never overwritten.`,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file.

With --write the schema is stored next to the config file, where the
"#:schema" header of generated configs points editors to it.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.Flags().BoolVar(&configJSON, "json", false, "print the key reference as JSON")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema next to the config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	provider := config.NewSchemaProvider()

	if configJSON {
		out, err := renderer.RenderSchemaJSON(provider.GetSchema())
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	path := app.Manager.TargetFile()
	exists, err := afero.Exists(afero.NewOsFs(), path)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(path, exists))
	fmt.Println(renderer.RenderSchema(provider.Sections(), provider.GetSchema()))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, written, err := app.Manager.Init()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderInitResult(path, written))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaWrite {
		renderer := styles.NewConfigRenderer(app.Theme)
		path, err := app.Manager.WriteSchema()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(renderer.RenderSchemaWritten(path))
		return nil
	}

	data, err := config.NewSchemaProvider().JSONSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
