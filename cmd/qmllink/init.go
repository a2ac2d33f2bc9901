package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/qmllink/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a qmllink configuration file",
		Long: `Generate a documented qmllink configuration file with sensible
defaults.

By default, creates qmllink.config.json in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create qmllink.config.json in current directory
  qmllink init

  # Custom output path
  qmllink init --config custom.json

  # Overwrite existing file
  qmllink init --force

  # Generate smaller config with essential options only
  qmllink init --minimal

  # Interactive setup wizard
  qmllink init --interactive
  qmllink init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "qmllink.config.json",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	projectType := config.ProjectTypeGeneric
	outputFormat := "text"

	if interactive {
		var err error
		var interactiveConfigPath string
		projectType, outputFormat, interactiveConfigPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
		configPath = interactiveConfigPath
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(projectType, outputFormat)
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'qmllink functions .' to extract your script modules.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (config.ProjectType, string, string, error) {
	fmt.Println()
	fmt.Println("qmllink Configuration Setup")
	fmt.Println("===========================")
	fmt.Println()

	projectTypes := []struct {
		Label string
		Value config.ProjectType
	}{
		{"Generic QML project", config.ProjectTypeGeneric},
		{"QML application", config.ProjectTypeApplication},
		{"QML module/library", config.ProjectTypeLibrary},
	}

	projectTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	projectPrompt := promptui.Select{
		Label:     "What type of project is this?",
		Items:     projectTypes,
		Templates: projectTemplates,
	}

	projectIdx, _, err := projectPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("project selection cancelled: %w", err)
	}
	selectedProject := projectTypes[projectIdx].Value

	fmt.Println()

	outputFormats := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"Text (recommended)", "Human-readable terminal output", "text"},
		{"JSON", "For editor and tooling integration", "json"},
		{"YAML", "For configuration pipelines", "yaml"},
	}

	formatTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	formatPrompt := promptui.Select{
		Label:     "What output format should commands default to?",
		Items:     outputFormats,
		Templates: formatTemplates,
	}

	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("format selection cancelled: %w", err)
	}
	selectedFormat := outputFormats[formatIdx].Value

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return selectedProject, selectedFormat, outputPath, nil
}
