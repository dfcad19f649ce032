package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealdeck/internal/card"
	"github.com/arcanaland/dealdeck/internal/deck"
)

// runIn executes the root command with args from inside dir and returns its output
func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	colorize.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs([]string{})
		resetFlags(RootCmd)
	})

	err = Execute()
	return out.String(), err
}

// resetFlags restores every flag in the command tree to its default, since
// flag values outlive a single Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// writeCatalog stores cards as a catalog file in dir
func writeCatalog(t *testing.T, dir, name string, cards []card.Card) {
	t.Helper()
	require.NoError(t, deck.WriteFile(filepath.Join(dir, name), cards))
}

func TestRootWritesCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.json"), []byte("old"), 0644))

	_, err := runIn(t, dir)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "cards.json"))
	require.NoError(t, err)
	want, err := deck.Encode(deck.Generate())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(written))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the generator writes exactly one file")
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := runIn(t, t.TempDir(), "extra")
	assert.Error(t, err)
}

func TestRootWriteFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cards.json"), 0755))

	_, err := runIn(t, dir)
	assert.ErrorContains(t, err, "cards.json")
}

func TestExportYAML(t *testing.T) {
	dir := t.TempDir()

	_, err := runIn(t, dir, "export", "--output", "deck.yaml", "--format", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "deck.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "- id: 0\n"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := runIn(t, t.TempDir(), "export", "--output", "deck.xml", "--format", "xml")
	assert.ErrorContains(t, err, `unsupported format "xml"`)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := runIn(t, dir)
	require.NoError(t, err)

	out, err := runIn(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog 'cards.json' is valid.")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`[{"id":0,"type":"money"}]`), 0644))
	out, err = runIn(t, dir, "validate", "broken.json")
	assert.ErrorContains(t, err, "validation failed")
	assert.Contains(t, out, `missing required field "value"`)
}

func TestDeckList(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "deck", "ls", "--type", "action")
	require.NoError(t, err)
	assert.Contains(t, out, "Deal Breaker")
	assert.Contains(t, out, "Pass Go")
	assert.NotContains(t, out, "Property (blue)")

	_, err = runIn(t, t.TempDir(), "deck", "ls", "--type", "chance")
	assert.ErrorContains(t, err, "unknown card type")
}

func TestDeckListUsesConfiguredFrequency(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".config", "dealdeck")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[frequency]\n\"Pass Go\" = 7\n"), 0644))

	out, err := runIn(t, dir, "deck", "ls", "--type", "action")
	require.NoError(t, err)

	var passGo string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Pass Go") {
			passGo = line
		}
	}
	require.NotEmpty(t, passGo)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(passGo), " 7"), passGo)
}

func TestDeckStats(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "deck", "stats")
	require.NoError(t, err)
	assert.Regexp(t, `total\s+40\s+106`, out)
	assert.Regexp(t, `wildcard\s+8\s+11`, out)
}

func TestShow(t *testing.T) {
	out, err := runIn(t, t.TempDir(), "show", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Just Say No")
	assert.Contains(t, out, "Description:")
	assert.Contains(t, out, "|     3M     |")
	assert.Contains(t, out, "Deck:  3 copies")

	out, err = runIn(t, t.TempDir(), "show", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "1 card: 3M, 2 cards: 8M")

	_, err = runIn(t, t.TempDir(), "show", "40")
	assert.ErrorContains(t, err, "card not found")

	_, err = runIn(t, t.TempDir(), "show", "blue")
	assert.ErrorContains(t, err, "must be a number")
}

func TestDeckListFromFile(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "cards.json", deck.Generate())

	out, err := runIn(t, dir, "deck", "ls", "--file", "cards.json", "--type", "action")
	require.NoError(t, err)
	assert.Regexp(t, `Pass Go\s+1M\s+10\n`, out)
	assert.NotContains(t, out, "Copy counts are omitted")
}

func TestDeckListFromForeignCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "actions.json", deck.Generate()[24:34])

	out, err := runIn(t, dir, "deck", "ls", "--file", "actions.json")
	require.NoError(t, err)
	assert.Regexp(t, `Pass Go\s+1M\s+-\n`, out)
	assert.NotRegexp(t, `Pass Go\s+1M\s+\d+`, out)
	assert.Contains(t, out, "Copy counts are omitted: catalog differs from the built-in tables.")

	out, err = runIn(t, dir, "deck", "stats", "--file", "actions.json")
	require.NoError(t, err)
	assert.Regexp(t, `total\s+10\s+-`, out)
	assert.NotContains(t, out, "Total value in deck")
}

func TestShowFromForeignCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "actions.json", deck.Generate()[24:34])

	out, err := runIn(t, dir, "show", "--file", "actions.json", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Just Say No")
	assert.NotContains(t, out, "Deck:")

	reordered := deck.Generate()
	reordered[24], reordered[25] = reordered[25], reordered[24]
	writeCatalog(t, dir, "reordered.json", reordered)

	out, err = runIn(t, dir, "show", "--file", "reordered.json", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Just Say No")
	assert.NotContains(t, out, "Deck:")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	out, err := runIn(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, ".config", "dealdeck", "config.toml"))

	_, err = runIn(t, dir, "config", "init")
	assert.ErrorContains(t, err, "already exists")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Steal a complete set of properties from any player", 20)
	assert.Equal(t, []string{"Steal a complete set", "of properties from", "any player"}, lines)
	assert.Equal(t, []string{""}, wrapText("   ", 20))
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "3M", stripAnsi("\x1b[38;2;0;0;0m\x1b[48;2;1;2;3m3\x1b[0m\x1b[0mM"))
}
