package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

// tokenizeToken is a token with its phonetic segmentation attached.
// Only word tokens carry phonetic units.
type tokenizeToken struct {
	domain.Token
	PhoneticUnits []domain.PhoneticUnit `json:"phonetic_units,omitempty"`
}

// tokenizeView is the JSON debug view of the segmentation pipeline.
type tokenizeView struct {
	Original  string          `json:"original"`
	Sanitized string          `json:"sanitized"`
	Tokens    []domain.Token  `json:"tokens"`
	Detailed  []tokenizeToken `json:"detailed_tokens"`
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Show the phonetic segmentation of Roman text",
	Long: `Tokenize shows how obadh segments Roman text before rendering.

The output is a JSON debug view with the sanitized text, the token
stream and the per-word phonetic units. Invalid characters are
stripped rather than rejected, so any input can be inspected.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	if translitService == nil {
		return errors.New("transliteration service not configured")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return cmd.Help()
	}

	sanitized := translitService.Clean(text)

	report, err := translitService.Analyze(cmd.Context(), sanitized)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	view := tokenizeView{
		Original:  text,
		Sanitized: sanitized,
		Tokens:    make([]domain.Token, 0, len(report.Analyses)),
		Detailed:  make([]tokenizeToken, 0, len(report.Analyses)),
	}
	for _, analysis := range report.Analyses {
		view.Tokens = append(view.Tokens, analysis.Token)
		view.Detailed = append(view.Detailed, tokenizeToken{
			Token:         analysis.Token,
			PhoneticUnits: analysis.Units,
		})
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding segmentation: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
