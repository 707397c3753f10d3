package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure output, batch and dictionary defaults.

Use subcommands to change specific settings or run the interactive
wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change a setting",
}

var settingsSetFormatCmd = &cobra.Command{
	Use:   "format <format>",
	Short: "Set the default output format",
	Long: `Set the default output format.

Available formats:
  text      - Plain Bengali text (default)
  json      - JSON object
  xml       - XML element
  html      - HTML fragment
  markdown  - Markdown table`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsSetFormat,
}

var settingsSetPrettyCmd = &cobra.Command{
	Use:   "pretty <on|off>",
	Short: "Toggle indented output for structured formats",
	Long: `Toggle indented output.

Applies to the json, xml and html formats; text and markdown output
is unaffected.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsSetPretty,
}

var settingsSetWorkersCmd = &cobra.Command{
	Use:   "workers <n>",
	Short: "Set the default batch worker count",
	Long: `Set the number of parallel batch workers.

Zero means one worker per CPU core.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsSetWorkers,
}

var settingsSetLenientCmd = &cobra.Command{
	Use:   "lenient <on|off>",
	Short: "Set the default batch error handling",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetLenient,
}

var settingsSetDictionaryCmd = &cobra.Command{
	Use:   "dictionary <on|off>",
	Short: "Enable or disable the exceptions dictionary",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetDictionary,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsSetCmd.AddCommand(settingsSetFormatCmd)
	settingsSetCmd.AddCommand(settingsSetPrettyCmd)
	settingsSetCmd.AddCommand(settingsSetWorkersCmd)
	settingsSetCmd.AddCommand(settingsSetLenientCmd)
	settingsSetCmd.AddCommand(settingsSetDictionaryCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Pretty: %s\n", onOff(settings.Output.Pretty))
	cmd.Println()

	cmd.Println("[Batch]")
	if settings.Batch.Workers > 0 {
		cmd.Printf("  Workers: %d\n", settings.Batch.Workers)
	} else {
		cmd.Println("  Workers: one per CPU core")
	}
	cmd.Printf("  Lenient: %s\n", onOff(settings.Batch.Lenient))
	cmd.Println()

	cmd.Println("[Dictionary]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.Dictionary.Enabled))
	if settings.Dictionary.Enabled {
		dataDir := settings.Dictionary.DataDir
		if dataDir == "" {
			dataDir = "~/.obadh/data"
		}
		cmd.Printf("  Data directory: %s\n", dataDir)
	}

	return nil
}

func runSettingsSetFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format, err := domain.ParseOutputFormat(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetDefaultFormat(format); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}

	cmd.Printf("Default output format set to: %s\n", format)
	return nil
}

func runSettingsSetPretty(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	pretty, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetOutputPretty(pretty); err != nil {
		return fmt.Errorf("failed to set pretty output: %w", err)
	}

	cmd.Printf("Pretty output: %s\n", onOff(pretty))
	return nil
}

func runSettingsSetWorkers(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	workers, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid worker count %q", args[0])
	}
	if err := settingsService.SetBatchWorkers(workers); err != nil {
		return fmt.Errorf("failed to set batch workers: %w", err)
	}

	if workers > 0 {
		cmd.Printf("Batch workers set to: %d\n", workers)
	} else {
		cmd.Println("Batch workers set to: one per CPU core")
	}
	return nil
}

func runSettingsSetLenient(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	lenient, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetBatchLenient(lenient); err != nil {
		return fmt.Errorf("failed to set lenient mode: %w", err)
	}

	cmd.Printf("Batch lenient mode: %s\n", onOff(lenient))
	return nil
}

func runSettingsSetDictionary(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetDictionaryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to set dictionary: %w", err)
	}

	cmd.Printf("Exceptions dictionary: %s\n", onOff(enabled))
	if enabled {
		cmd.Println("Add exceptions with: obadh dict add <roman> <bengali>")
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Obadh Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Default output format
	cmd.Println("Step 1: Default Output Format")
	cmd.Println("-----------------------------")
	formats := domain.AllOutputFormats()
	for i, format := range formats {
		cmd.Printf("  %d. %s\n", i+1, format.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(formats), 1)
	selected := formats[idx-1]

	if err := settingsService.SetDefaultFormat(selected); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}
	cmd.Printf("Set default format to: %s\n\n", selected)

	// Step 2: Pretty output
	cmd.Println("Step 2: Pretty Output")
	cmd.Println("---------------------")
	cmd.Print("Indent json/xml/html output? [y/N]: ")
	input = readLine(reader)
	pretty := strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
	if err := settingsService.SetOutputPretty(pretty); err != nil {
		return fmt.Errorf("failed to set pretty output: %w", err)
	}
	cmd.Printf("Pretty output: %s\n\n", onOff(pretty))

	// Step 3: Batch workers
	cmd.Println("Step 3: Batch Workers")
	cmd.Println("---------------------")
	cmd.Print("Enter worker count, 0 for one per CPU core [0]: ")
	input = readLine(reader)
	workers := 0
	if input != "" {
		n, err := strconv.Atoi(input)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid worker count %q", input)
		}
		workers = n
	}
	if err := settingsService.SetBatchWorkers(workers); err != nil {
		return fmt.Errorf("failed to set batch workers: %w", err)
	}
	if workers > 0 {
		cmd.Printf("Set batch workers to: %d\n\n", workers)
	} else {
		cmd.Print("Set batch workers to: one per CPU core\n\n")
	}

	// Step 4: Lenient batch mode
	cmd.Println("Step 4: Batch Error Handling")
	cmd.Println("----------------------------")
	cmd.Print("Keep going when a batch line fails? [y/N]: ")
	input = readLine(reader)
	lenient := strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
	if err := settingsService.SetBatchLenient(lenient); err != nil {
		return fmt.Errorf("failed to set lenient mode: %w", err)
	}
	cmd.Printf("Batch lenient mode: %s\n\n", onOff(lenient))

	// Step 5: Exceptions dictionary
	cmd.Println("Step 5: Exceptions Dictionary")
	cmd.Println("-----------------------------")
	cmd.Print("Enable the exceptions dictionary? [y/N]: ")
	input = readLine(reader)
	enabled := strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
	if err := settingsService.SetDictionaryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to set dictionary: %w", err)
	}
	cmd.Printf("Exceptions dictionary: %s\n\n", onOff(enabled))

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are saved.")

	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseOnOff(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q, expected on or off", input)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
