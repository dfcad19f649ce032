package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/dealdeck/internal/card"
	"github.com/arcanaland/dealdeck/internal/config"
	"github.com/arcanaland/dealdeck/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the card catalog and the playing deck built from it",
	Long: `Commands for inspecting the card catalog and the playing deck built from it.
The number of copies of each action card can be tuned in the [frequency] table
of the config file.

Copy counts are keyed by built-in card id, so they are only shown when the
catalog matches the built-in tables. A --file catalog that is stale or
reordered is listed without them.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileFlag, _ := cmd.Flags().GetString("file")
		typeFlag, _ := cmd.Flags().GetString("type")

		d, err := loadCatalog(fileFlag)
		if err != nil {
			return err
		}

		freq, err := catalogFrequencies(d)
		if err != nil {
			return err
		}

		cards := d.Cards
		if typeFlag != "" {
			if !isKnownType(card.Type(typeFlag)) {
				return fmt.Errorf("unknown card type %q", typeFlag)
			}
			cards = d.Filter(card.Type(typeFlag))
		}

		listCards(cmd.OutOrStdout(), cards, freq)
		return nil
	},
}

// deckStatsCmd represents the deck stats command
var deckStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the playing deck by card type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileFlag, _ := cmd.Flags().GetString("file")

		d, err := loadCatalog(fileFlag)
		if err != nil {
			return err
		}

		freq, err := catalogFrequencies(d)
		if err != nil {
			return err
		}

		if freq == nil {
			printStats(cmd.OutOrStdout(), d.Cards, nil)
			return nil
		}
		printStats(cmd.OutOrStdout(), d.Cards, deck.Expand(d.Cards, freq))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckStatsCmd)

	deckCmd.PersistentFlags().StringP("file", "f", "", "Read cards from a catalog file instead of the built-in tables")
	deckListCmd.Flags().StringP("type", "t", "", "Only list cards of this type (action, money, rent, property)")
}

func configuredFrequencies() (deck.Frequencies, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Frequencies()
}

// catalogFrequencies returns the configured copy counts for d, or nil when d
// is not the built-in catalog and the counts would land on the wrong cards.
func catalogFrequencies(d *deck.Deck) (deck.Frequencies, error) {
	if !deck.MatchesBuiltin(d.Cards) {
		logger.Debug("Catalog differs from the built-in tables, omitting copy counts", zap.String("path", d.Path))
		return nil, nil
	}
	return configuredFrequencies()
}

func isKnownType(t card.Type) bool {
	for _, known := range card.Types {
		if t == known {
			return true
		}
	}
	return false
}

func listCards(w io.Writer, cards []card.Card, freq deck.Frequencies) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards found.")
		return
	}

	fmt.Fprintf(w, "%s\n", colorize.CyanString("%4s  %-8s  %-32s  %5s  %6s", "ID", "TYPE", "NAME", "VALUE", "COPIES"))
	for _, c := range cards {
		name := fmt.Sprintf("%-32s", c.Name())
		if c.IsWildcard() || c.Type == card.Action {
			name = colorize.HiWhiteString("%s", name)
		}
		copies := "-"
		if freq != nil {
			copies = fmt.Sprint(freq.Copies(c.ID))
		}
		fmt.Fprintf(w, "%4d  %-8s  %s  %5s  %6s\n", c.ID, c.Type, name, valueLabel(c), copies)
	}
	if freq == nil {
		fmt.Fprintln(w, "\nCopy counts are omitted: catalog differs from the built-in tables.")
	}
}

// printStats summarizes cards and the draw pile built from them. A nil pile
// leaves the deck column blank.
func printStats(w io.Writer, cards, pile []card.Card) {
	catalog := make(map[string]int)
	playing := make(map[string]int)
	totalValue := 0
	for _, c := range cards {
		catalog[statsGroup(c)]++
	}
	for _, c := range pile {
		playing[statsGroup(c)]++
		totalValue += c.Value
	}

	fmt.Fprintf(w, "%s\n", colorize.CyanString("%-10s  %7s  %7s", "GROUP", "CATALOG", "DECK"))
	deckCount := func(n int) string {
		if pile == nil {
			return "-"
		}
		return fmt.Sprint(n)
	}
	for _, group := range []string{"property", "wildcard", "rent", "action", "money"} {
		fmt.Fprintf(w, "%-10s  %7d  %7s\n", group, catalog[group], deckCount(playing[group]))
	}
	fmt.Fprintf(w, "%-10s  %7d  %7s\n", "total", len(cards), deckCount(len(pile)))
	if pile == nil {
		fmt.Fprintln(w, "\nDeck counts are omitted: catalog differs from the built-in tables.")
		return
	}
	fmt.Fprintf(w, "\nTotal value in deck: %dM\n", totalValue)
}

func statsGroup(c card.Card) string {
	if c.IsWildcard() {
		return "wildcard"
	}
	return string(c.Type)
}
