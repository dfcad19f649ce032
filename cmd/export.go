package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealdeck/internal/config"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the card catalog to a chosen path and format",
	Long: `Export writes the same catalog as running dealdeck without arguments, but to
the path given with --output and in the format given with --format (json or
yaml). Defaults come from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		output := cfg.Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}
		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}

		logger.Debug("Exporting catalog", zap.String("output", output), zap.String("format", format))
		return generate(output, format)
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Path of the file to write")
	exportCmd.Flags().String("format", "", "Output format: json or yaml")
}
