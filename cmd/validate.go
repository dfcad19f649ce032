package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealdeck/internal/deck"
	"github.com/arcanaland/dealdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card catalog file",
	Long: `Validate checks that a catalog file is a JSON array of cards with sequential
ids and exactly the fields each card type allows. The path defaults to
cards.json in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := deck.DefaultOutput
		if len(args) == 1 {
			path = args[0]
		}

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		logger.Debug("Validated catalog",
			zap.String("path", path),
			zap.Int("errors", len(results.Errors)),
			zap.Int("warnings", len(results.Warnings)))

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Validation Results:")
		fmt.Fprintln(w, "-------------------")

		if results.Valid() {
			fmt.Fprintln(w, colorize.GreenString("✅ Catalog '%s' is valid.", path))
		} else {
			fmt.Fprintln(w, colorize.RedString("❌ Catalog '%s' has %d validation errors:", path, len(results.Errors)))
			for i, msg := range results.Errors {
				fmt.Fprintf(w, "%d. %s\n", i+1, msg)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(w, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(w, "%d. %s\n", i+1, colorize.YellowString("%s", warn))
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
