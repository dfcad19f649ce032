package card

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Rainbow is the token of cards that match any solid color
const Rainbow = "rainbow"

// SolidColors lists the property colors in board order
var SolidColors = []string{
	"blue", "green", "yellow",
	"red", "orange", "pink",
	"black", "light_blue", "brown",
	"light_green",
}

var colorHex = map[string]string{
	"blue":        "#3838a3",
	"green":       "#156b63",
	"yellow":      "#eaa934",
	"red":         "#c14040",
	"orange":      "#e8823d",
	"pink":        "#c067d6",
	"black":       "#000000",
	"light_blue":  "#21afdb",
	"light_green": "#46af82",
	"brown":       "#51392d",
}

var moneyHex = map[int]string{
	1:  "#a1c4bf",
	2:  "#d3a584",
	3:  "#5fb7a6",
	4:  "#709ac4",
	5:  "#8b64bc",
	10: "#c48933",
}

// IsKnownColor reports whether token is a solid color or rainbow
func IsKnownColor(token string) bool {
	if token == Rainbow {
		return true
	}
	_, ok := colorHex[token]
	return ok
}

// DisplayColor returns the on-screen color of a solid color token
func DisplayColor(token string) (colorful.Color, bool) {
	hex, ok := colorHex[token]
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// MoneyColor returns the on-screen color of a money denomination
func MoneyColor(value int) (colorful.Color, bool) {
	hex, ok := moneyHex[value]
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Shades returns width display colors for a card, split evenly between the
// colors of a pair and cycling through every solid color for rainbow cards.
func (c Card) Shades(width int) []colorful.Color {
	if width <= 0 {
		return nil
	}

	var stops []colorful.Color
	switch {
	case c.Type == Money:
		if mc, ok := MoneyColor(c.Value); ok {
			stops = append(stops, mc)
		}
	case c.Color.IsRainbow():
		for _, token := range SolidColors {
			dc, _ := DisplayColor(token)
			stops = append(stops, dc)
		}
	default:
		for _, token := range c.Color {
			if dc, ok := DisplayColor(token); ok {
				stops = append(stops, dc)
			}
		}
	}
	if len(stops) == 0 {
		// Action cards print on cream stock
		cream, _ := colorful.Hex("#f3ead3")
		stops = append(stops, cream)
	}

	shades := make([]colorful.Color, width)
	for i := range shades {
		shades[i] = stops[i*len(stops)/width]
	}
	return shades
}
