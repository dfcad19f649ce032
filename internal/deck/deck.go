package deck

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/dealdeck/internal/card"
)

// DefaultOutput is where the catalog is written when no path is given
const DefaultOutput = "cards.json"

// Deck is an ordered card catalog, indexed by card id
type Deck struct {
	Cards []card.Card
	Path  string
}

// New builds the catalog from the built-in tables
func New() *Deck {
	return &Deck{Cards: Generate()}
}

// Generate expands every table into card records and assigns ids in order:
// properties, wildcards, rent, action, money.
func Generate() []card.Card {
	total := len(propertyTable) + len(wildcardTable) + len(rentTable) + len(actionTable) + len(moneyTable)
	cards := make([]card.Card, 0, total)

	for _, p := range propertyTable {
		cards = append(cards, card.Card{
			Type:   card.Property,
			Color:  card.Single(p.Color),
			Value:  p.Value,
			Stages: append([]int(nil), p.Stages...),
		})
	}

	for _, w := range wildcardTable {
		cards = append(cards, card.Card{
			Type:  card.Property,
			Color: append(card.Color(nil), w.Color...),
			Value: w.Value,
		})
	}

	for _, r := range rentTable {
		cards = append(cards, card.Card{
			Type:        card.Rent,
			Color:       append(card.Color(nil), r.Color...),
			Value:       r.Value,
			Description: rentDescription(r.Color),
		})
	}

	for _, a := range actionTable {
		cards = append(cards, card.Card{
			Type:        card.Action,
			Title:       a.Title,
			Value:       a.Value,
			Description: a.Description,
		})
	}

	for _, v := range moneyTable {
		cards = append(cards, card.Card{
			Type:  card.Money,
			Value: v,
		})
	}

	for i := range cards {
		cards[i].ID = i
	}

	return cards
}

// MatchesBuiltin reports whether cards are exactly the catalog Generate
// builds, ids included.
func MatchesBuiltin(cards []card.Card) bool {
	return cmp.Equal(cards, Generate())
}

// Encode serializes cards as a compact JSON array without a trailing newline
func Encode(cards []card.Card) ([]byte, error) {
	if cards == nil {
		cards = []card.Card{}
	}
	data, err := json.MarshalNoEscape(cards)
	if err != nil {
		return nil, fmt.Errorf("error encoding cards: %w", err)
	}
	return data, nil
}

// EncodeYAML serializes cards as a YAML sequence
func EncodeYAML(cards []card.Card) ([]byte, error) {
	data, err := yaml.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("error encoding cards as yaml: %w", err)
	}
	return data, nil
}

// WriteFile writes the encoded catalog to path, replacing any existing content
func WriteFile(path string, cards []card.Card) error {
	data, err := Encode(cards)
	if err != nil {
		return err
	}
	return write(path, data)
}

// WriteYAMLFile is WriteFile for the YAML rendering
func WriteYAMLFile(path string, cards []card.Card) error {
	data, err := EncodeYAML(cards)
	if err != nil {
		return err
	}
	return write(path, data)
}

func write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// LoadDeck reads a catalog previously written by WriteFile
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var cards []card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return &Deck{Cards: cards, Path: path}, nil
}

// GetCard returns the card with the given id
func (d *Deck) GetCard(id int) (card.Card, error) {
	if id < 0 || id >= len(d.Cards) || d.Cards[id].ID != id {
		for _, c := range d.Cards {
			if c.ID == id {
				return c, nil
			}
		}
		return card.Card{}, fmt.Errorf("card not found: %d", id)
	}
	return d.Cards[id], nil
}

// Filter returns the cards of the given type, wildcards included under property
func (d *Deck) Filter(t card.Type) []card.Card {
	var out []card.Card
	for _, c := range d.Cards {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
