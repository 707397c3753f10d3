package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

var dictNote string

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the exceptions dictionary",
	Long: `Commands for the exceptions dictionary.

Exceptions override the phonetic rules for whole words, so loanwords
and proper nouns can be spelled the way people actually write them.
The dictionary is disabled by default; enable it with:

  obadh settings set dictionary on`,
}

var dictAddCmd = &cobra.Command{
	Use:   "add <roman> <bengali>",
	Short: "Add an exception",
	Args:  cobra.ExactArgs(2),
	RunE:  runDictAdd,
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all exceptions",
	Args:  cobra.NoArgs,
	RunE:  runDictList,
}

var dictRemoveCmd = &cobra.Command{
	Use:   "remove <roman>",
	Short: "Remove an exception",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictRemove,
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import exceptions from a JSON file",
	Long: `Import reads exceptions from a JSON array and stores them.

Entries whose Roman form already exists are overwritten. Use - as the
file name to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDictImport,
}

var dictExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all exceptions as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDictExport,
}

func init() {
	dictAddCmd.Flags().StringVar(&dictNote, "note", "", "optional note describing the exception")
	dictCmd.AddCommand(dictAddCmd)
	dictCmd.AddCommand(dictListCmd)
	dictCmd.AddCommand(dictRemoveCmd)
	dictCmd.AddCommand(dictImportCmd)
	dictCmd.AddCommand(dictExportCmd)
	rootCmd.AddCommand(dictCmd)
}

// dictError rewords dictionary failures that have a user remedy.
func dictError(action string, err error) error {
	if errors.Is(err, domain.ErrDictionaryDisabled) {
		return errors.New("the dictionary is disabled, enable it with: obadh settings set dictionary on")
	}
	return fmt.Errorf("%s: %w", action, err)
}

func runDictAdd(cmd *cobra.Command, args []string) error {
	if dictService == nil {
		return errors.New("dictionary service not configured")
	}

	exc, err := dictService.Add(cmd.Context(), args[0], args[1], dictNote)
	if err != nil {
		return dictError("adding exception", err)
	}

	cmd.Printf("Added exception: %s -> %s\n", exc.Roman, exc.Bengali)
	return nil
}

func runDictList(cmd *cobra.Command, _ []string) error {
	if dictService == nil {
		return errors.New("dictionary service not configured")
	}

	exceptions, err := dictService.List(cmd.Context())
	if err != nil {
		return dictError("listing exceptions", err)
	}

	if len(exceptions) == 0 {
		cmd.Println("No exceptions defined.")
		return nil
	}

	cmd.Printf("Exceptions (%d):\n", len(exceptions))
	for _, exc := range exceptions {
		if exc.Note != "" {
			cmd.Printf("  %-20s %s  (%s)\n", exc.Roman, exc.Bengali, exc.Note)
		} else {
			cmd.Printf("  %-20s %s\n", exc.Roman, exc.Bengali)
		}
	}
	return nil
}

func runDictRemove(cmd *cobra.Command, args []string) error {
	if dictService == nil {
		return errors.New("dictionary service not configured")
	}

	if err := dictService.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no exception for %q", args[0])
		}
		return dictError("removing exception", err)
	}

	cmd.Printf("Removed exception: %s\n", args[0])
	return nil
}

func runDictImport(cmd *cobra.Command, args []string) error {
	if dictService == nil {
		return errors.New("dictionary service not configured")
	}

	reader := cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	count, err := dictService.Import(cmd.Context(), reader)
	if err != nil {
		if count > 0 {
			return fmt.Errorf("import stopped after %d entries: %w", count, err)
		}
		return dictError("importing exceptions", err)
	}

	cmd.Printf("Imported %d exceptions.\n", count)
	return nil
}

func runDictExport(cmd *cobra.Command, args []string) error {
	if dictService == nil {
		return errors.New("dictionary service not configured")
	}

	writer := cmd.OutOrStdout()
	if len(args) > 0 {
		file, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	if err := dictService.Export(cmd.Context(), writer); err != nil {
		return dictError("exporting exceptions", err)
	}
	return nil
}
