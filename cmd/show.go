package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/dealdeck/internal/card"
	"github.com/arcanaland/dealdeck/internal/deck"
)

const (
	artWidth  = 14
	artHeight = 7
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card from the catalog next to a colored rendering of it.
Card ids are the sequential ids written to cards.json.

By default the built-in catalog is used. Pass --file to read a catalog file;
the number of copies in a playing deck is only shown when that file matches
the built-in tables.

Examples:
  dealdeck show 0
  dealdeck show 25
  dealdeck show --file ./cards.json 39`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid card id %q: must be a number", args[0])
		}

		fileFlag, _ := cmd.Flags().GetString("file")
		d, err := loadCatalog(fileFlag)
		if err != nil {
			return err
		}

		c, err := d.GetCard(id)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		freq, err := catalogFrequencies(d)
		if err != nil {
			return err
		}

		copies := -1
		if freq != nil {
			copies = freq.Copies(c.ID)
		}
		displayCard(cmd.OutOrStdout(), c, copies, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("file", "f", "", "Read cards from a catalog file instead of the built-in tables")
}

// loadCatalog returns the built-in catalog, or the one stored at path when set
func loadCatalog(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.New(), nil
	}
	d, err := deck.LoadDeck(path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	logger.Debug("Loaded catalog", zap.String("path", path), zap.Int("cards", len(d.Cards)))
	return d, nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return width
}

// renderArt draws the card face as colored blocks, or a plain frame when color is off
func renderArt(c card.Card) []string {
	label := valueLabel(c)
	labelRow := artHeight / 2
	labelStart := (artWidth - len(label)) / 2

	if colorize.NoColor {
		lines := make([]string, 0, artHeight)
		border := "+" + strings.Repeat("-", artWidth-2) + "+"
		for row := 0; row < artHeight; row++ {
			switch row {
			case 0, artHeight - 1:
				lines = append(lines, border)
			case labelRow:
				inner := artWidth - 2
				left := (inner - len(label)) / 2
				lines = append(lines, "|"+strings.Repeat(" ", left)+label+strings.Repeat(" ", inner-left-len(label))+"|")
			default:
				lines = append(lines, "|"+strings.Repeat(" ", artWidth-2)+"|")
			}
		}
		return lines
	}

	shades := c.Shades(artWidth)
	lines := make([]string, 0, artHeight)
	for row := 0; row < artHeight; row++ {
		var b strings.Builder
		for col, shade := range shades {
			char := ' '
			if row == labelRow && col >= labelStart && col < labelStart+len(label) {
				char = rune(label[col-labelStart])
			}
			b.WriteString(ansiColorString(char, textColorOn(shade), shade))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// ansiColorString formats a character with truecolor ANSI codes
func ansiColorString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// textColorOn picks black or white text for readability on bg
func textColorOn(bg colorful.Color) colorful.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func valueLabel(c card.Card) string {
	return fmt.Sprintf("%dM", c.Value)
}

func formatStages(stages []int) string {
	parts := make([]string, len(stages))
	for i, rent := range stages {
		if i == 0 {
			parts[i] = fmt.Sprintf("1 card: %dM", rent)
		} else {
			parts[i] = fmt.Sprintf("%d cards: %dM", i+1, rent)
		}
	}
	return strings.Join(parts, ", ")
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard prints the card art on the left and its details on the right.
// A negative copies count leaves out the deck line.
func displayCard(w io.Writer, c card.Card, copies, width int) {
	artLines := renderArt(c)

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card:  ")+colorize.HiWhiteString("%s", c.Name()))
	infoLines = append(infoLines, colorize.CyanString("ID:    ")+colorize.HiWhiteString("%d", c.ID))
	infoLines = append(infoLines, colorize.CyanString("Type:  ")+colorize.HiWhiteString("%s", c.Type))
	if len(c.Color) > 0 {
		infoLines = append(infoLines, colorize.CyanString("Color: ")+colorize.HiWhiteString("%s", c.Color))
	}
	infoLines = append(infoLines, colorize.CyanString("Value: ")+colorize.HiWhiteString("%s", valueLabel(c)))
	if len(c.Stages) > 0 {
		infoLines = append(infoLines, colorize.CyanString("Rent:  ")+colorize.HiWhiteString("%s", formatStages(c.Stages)))
	}
	if copies >= 0 {
		infoLines = append(infoLines, colorize.CyanString("Deck:  ")+colorize.HiWhiteString("%d copies", copies))
	}

	spacing := 4
	infoStartCol := artWidth + spacing

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if c.Description != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Description:"))
		infoLines = append(infoLines, wrapText(c.Description, infoWidth)...)
	}

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			visibleWidth := len(stripAnsi(artLines[i]))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
