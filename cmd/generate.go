package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arcanaland/dealdeck/internal/config"
	"github.com/arcanaland/dealdeck/internal/deck"
)

const (
	formatJSON = config.FormatJSON
	formatYAML = config.FormatYAML
)

// generate builds the catalog and writes it to path in the given format
func generate(path, format string) error {
	cards := deck.Generate()
	logger.Debug("Generated catalog", zap.Int("cards", len(cards)))

	var err error
	switch format {
	case formatJSON:
		err = deck.WriteFile(path, cards)
	case formatYAML:
		err = deck.WriteYAMLFile(path, cards)
	default:
		return fmt.Errorf("unsupported format %q (supported: %s, %s)", format, formatJSON, formatYAML)
	}
	if err != nil {
		return err
	}

	logger.Debug("Wrote catalog", zap.String("path", path), zap.String("format", format))
	return nil
}
