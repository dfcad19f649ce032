package deck

import "github.com/arcanaland/dealdeck/internal/card"

// Rent card descriptions
const (
	RainbowRentDescription = "Charges one player rent"
	PairRentDescription    = "Charges other players rent of either color"
)

type propertyEntry struct {
	Color  string
	Value  int
	Stages []int
}

type wildcardEntry struct {
	Color card.Color
	Value int
}

type rentEntry struct {
	Color card.Color
	Value int
}

type actionEntry struct {
	Title       string
	Value       int
	Description string
}

var propertyTable = []propertyEntry{
	{"blue", 4, []int{3, 8}},
	{"green", 4, []int{2, 4, 7}},
	{"yellow", 3, []int{2, 4, 6}},
	{"red", 3, []int{2, 3, 6}},
	{"orange", 2, []int{1, 3, 5}},
	{"pink", 2, []int{1, 2, 4}},
	{"black", 1, []int{1, 2, 3, 4}},
	{"light_blue", 1, []int{1, 2, 3}},
	{"light_green", 1, []int{1, 2}},
	{"brown", 1, []int{1, 3}},
}

var wildcardTable = []wildcardEntry{
	{card.Pair("blue", "green"), 4},
	{card.Pair("yellow", "red"), 3},
	{card.Pair("orange", "pink"), 2},
	{card.Pair("green", "black"), 4},
	{card.Pair("black", "light_blue"), 4},
	{card.Pair("black", "light_green"), 2},
	{card.Pair("light_blue", "brown"), 1},
	{card.Single(card.Rainbow), 0},
}

var rentTable = []rentEntry{
	{card.Single(card.Rainbow), 3},
	{card.Pair("blue", "green"), 1},
	{card.Pair("yellow", "red"), 1},
	{card.Pair("orange", "pink"), 1},
	{card.Pair("black", "light_green"), 1},
	{card.Pair("light_blue", "brown"), 1},
}

// The game engine addresses action cards by id, so this order is load-bearing.
var actionTable = []actionEntry{
	{"Deal Breaker", 5, "Steal a complete set of properties from any player, including any house or hotel"},
	{"Just Say No", 3, "Cancel an action card played against you"},
	{"Sly Deal", 1, "Steal a property from any player that is not part of a full set"},
	{"Forced Deal", 3, "Swap one of your properties with another player's property that is not part of a full set"},
	{"Debt Collector", 3, "Force any player to pay you 5M"},
	{"Hotel", 4, "Add onto a full set that has a house to add 4M to its rent value"},
	{"House", 3, "Add onto any full set to add 3M to its rent value"},
	{"It's My Birthday!", 2, "All players give you 2M as a gift"},
	{"Double The Rent", 1, "Play with a rent card to double the rent charged"},
	{"Pass Go", 1, "Draw 2 extra cards"},
}

var moneyTable = []int{10, 5, 4, 3, 2, 1}

// rentDescription picks the description a rent card carries for its color
func rentDescription(c card.Color) string {
	if c.IsRainbow() {
		return RainbowRentDescription
	}
	return PairRentDescription
}
