package card

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Type is the category a card belongs to
type Type string

const (
	Action   Type = "action"
	Money    Type = "money"
	Rent     Type = "rent"
	Property Type = "property"
)

// Types lists every card type in catalog group order, wildcards counting as property
var Types = []Type{Property, Rent, Action, Money}

// Card represents one record of the card catalog.
//
// Field order matters: it is the key order of the encoded JSON object.
type Card struct {
	ID          int    `json:"id" yaml:"id" mapstructure:"id"`
	Type        Type   `json:"type" yaml:"type" mapstructure:"type"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Color       Color  `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`
	Value       int    `json:"value" yaml:"value" mapstructure:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Stages      []int  `json:"stages,omitempty" yaml:"stages,flow,omitempty" mapstructure:"stages"`
}

// Color is either a single color token or an ordered pair of solid tokens
type Color []string

// Single returns a Color holding one token
func Single(token string) Color {
	return Color{token}
}

// Pair returns a Color usable as either of two solid colors
func Pair(first, second string) Color {
	return Color{first, second}
}

// IsRainbow reports whether the color matches every solid color
func (c Color) IsRainbow() bool {
	return len(c) == 1 && c[0] == Rainbow
}

// IsPair reports whether the color is a two-color pair
func (c Color) IsPair() bool {
	return len(c) == 2
}

func (c Color) String() string {
	return strings.Join(c, "/")
}

// MarshalJSON encodes a single token as a string and a pair as an array
func (c Color) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		*c = Color{token}
		return nil
	}

	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("color must be a string or an array of strings: %w", err)
	}
	*c = tokens
	return nil
}

// MarshalYAML mirrors the JSON shape
func (c Color) MarshalYAML() (interface{}, error) {
	if len(c) == 1 {
		return c[0], nil
	}
	return []string(c), nil
}

// IsWildcard reports whether the card is a property usable as more than one color
func (c Card) IsWildcard() bool {
	return c.Type == Property && (c.Color.IsPair() || c.Color.IsRainbow())
}

// Name returns a short human readable label for the card
func (c Card) Name() string {
	switch c.Type {
	case Action:
		return c.Title
	case Money:
		return fmt.Sprintf("%dM", c.Value)
	case Rent:
		return fmt.Sprintf("Rent (%s)", c.Color)
	case Property:
		if c.IsWildcard() {
			return fmt.Sprintf("Wildcard (%s)", c.Color)
		}
		return fmt.Sprintf("Property (%s)", c.Color)
	}
	return string(c.Type)
}

// Validate checks that the card carries exactly the fields its type allows
func (c Card) Validate() error {
	var problems []string
	require := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	require(c.ID >= 0, "id must be non-negative")

	switch c.Type {
	case Action:
		require(c.Title != "", "action requires a title")
		require(c.Description != "", "action requires a description")
		require(len(c.Color) == 0, "action must not have a color")
		require(len(c.Stages) == 0, "action must not have stages")
	case Money:
		require(c.Title == "", "money must not have a title")
		require(c.Description == "", "money must not have a description")
		require(len(c.Color) == 0, "money must not have a color")
		require(len(c.Stages) == 0, "money must not have stages")
	case Rent:
		require(c.Title == "", "rent must not have a title")
		require(c.Description != "", "rent requires a description")
		if len(c.Color) <= 2 {
			require(c.Color.IsRainbow() || c.Color.IsPair(), "rent color must be rainbow or a pair")
		}
		require(len(c.Stages) == 0, "rent must not have stages")
	case Property:
		require(c.Title == "", "property must not have a title")
		require(c.Description == "", "property must not have a description")
		require(len(c.Color) > 0, "property requires a color")
		if c.IsWildcard() {
			require(len(c.Stages) == 0, "wildcard must not have stages")
		} else if len(c.Color) == 1 {
			require(len(c.Stages) > 0, "property requires stages")
		}
	default:
		return fmt.Errorf("card %d: unknown type %q", c.ID, c.Type)
	}

	require(len(c.Color) <= 2, "color must be a single token or a pair")
	for _, token := range c.Color {
		require(IsKnownColor(token), fmt.Sprintf("unknown color %q", token))
	}
	if c.Color.IsPair() {
		require(c.Color[0] != Rainbow && c.Color[1] != Rainbow, "a color pair must be two solid colors")
	}
	for _, stage := range c.Stages {
		require(stage > 0, "stages must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("card %d: %s", c.ID, strings.Join(problems, "; "))
	}
	return nil
}
