package validator

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"

	"github.com/arcanaland/dealdeck/internal/card"
	"github.com/arcanaland/dealdeck/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Path    string
	Results ValidationResults

	cards []card.Card
	// complete is false when some records could not be decoded
	complete bool
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate reads the catalog file and checks it. The returned error is only
// set when the file cannot be read or is not a JSON array at all.
func (v *Validator) Validate() (ValidationResults, error) {
	data, err := os.ReadFile(v.Path)
	if err != nil {
		return v.Results, fmt.Errorf("error reading %s: %w", v.Path, err)
	}
	return v.ValidateBytes(data)
}

// ValidateBytes checks an encoded catalog
func (v *Validator) ValidateBytes(data []byte) (ValidationResults, error) {
	var records []interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return v.Results, fmt.Errorf("catalog is not a JSON array: %w", err)
	}

	v.decodeRecords(records)
	v.validateActions()
	v.validateProperties()
	v.validateRent()

	if !v.complete {
		v.warnf("skipped id and ordering checks because some records are invalid")
		return v.Results, nil
	}

	v.validateIDs()
	v.validateGroupOrder()
	v.compareBuiltin()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// decodeRecords turns each loose object into a card, rejecting unknown keys
func (v *Validator) decodeRecords(records []interface{}) {
	if len(records) == 0 {
		v.warnf("catalog is empty")
	}

	for i, record := range records {
		fields, ok := record.(map[string]interface{})
		if !ok {
			v.errorf("record %d: expected an object, got %T", i, record)
			continue
		}

		missing := false
		for _, key := range []string{"id", "type", "value"} {
			if _, ok := fields[key]; !ok {
				v.errorf("record %d: missing required field %q", i, key)
				missing = true
			}
		}
		if missing {
			continue
		}

		if err := checkFieldSet(fields); err != nil {
			v.errorf("record %d: %v", i, err)
			continue
		}

		c, err := decodeCard(fields)
		if err != nil {
			v.errorf("record %d: %v", i, err)
			continue
		}

		if err := c.Validate(); err != nil {
			v.errorf("record %d: %v", i, err)
			continue
		}

		v.cards = append(v.cards, c)
	}

	v.complete = len(v.cards) == len(records)
}

var (
	actionFields   = []string{"id", "type", "title", "value", "description"}
	moneyFields    = []string{"id", "type", "value"}
	rentFields     = []string{"id", "type", "color", "value", "description"}
	propertyFields = []string{"id", "type", "color", "value", "stages"}
	wildcardFields = []string{"id", "type", "color", "value"}
)

// allowedFields returns the kind of card a record describes and the keys it
// may carry. The key list is nil when the type is unknown.
func allowedFields(fields map[string]interface{}) (string, []string) {
	t, _ := fields["type"].(string)
	switch card.Type(t) {
	case card.Action:
		return t, actionFields
	case card.Money:
		return t, moneyFields
	case card.Rent:
		return t, rentFields
	case card.Property:
		switch color := fields["color"].(type) {
		case []interface{}:
			if len(color) == 2 {
				return "wildcard", wildcardFields
			}
		case string:
			if color == card.Rainbow {
				return "wildcard", wildcardFields
			}
		}
		return t, propertyFields
	}
	return t, nil
}

// checkFieldSet rejects keys the record's type does not allow, even when
// their value is empty or null and would decode to a zero value.
func checkFieldSet(fields map[string]interface{}) error {
	kind, allowed := allowedFields(fields)
	if allowed == nil {
		return nil
	}

	var extra []string
	for key := range fields {
		if !contains(allowed, key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}

	sort.Strings(extra)
	return fmt.Errorf("field(s) not allowed on %s cards: %s", kind, strings.Join(extra, ", "))
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func decodeCard(fields map[string]interface{}) (card.Card, error) {
	var c card.Card
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integralNumberHook,
			colorHook,
		),
		ErrorUnused: true,
		Result:      &c,
	})
	if err != nil {
		return c, err
	}
	if err := decoder.Decode(fields); err != nil {
		return c, err
	}
	return c, nil
}

// integralNumberHook rejects fractional or oversized numbers bound for integer fields
func integralNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}
	f := data.(float64)
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return nil, fmt.Errorf("integer %v is out of range", f)
	}
	return int(f), nil
}

// colorHook accepts the single-token string form of a color
func colorHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(card.Color{}) || from.Kind() != reflect.String {
		return data, nil
	}
	return card.Single(data.(string)), nil
}

// validateIDs checks that ids are unique and cover [0, N)
func (v *Validator) validateIDs() {
	seen := make(map[int]int)
	outOfOrder := false
	for i, c := range v.cards {
		if prev, ok := seen[c.ID]; ok {
			v.errorf("duplicate id %d (records %d and %d)", c.ID, prev, i)
			continue
		}
		seen[c.ID] = i
		if c.ID != i {
			outOfOrder = true
		}
	}

	var outside []string
	for id := range seen {
		if id >= len(v.cards) {
			outside = append(outside, fmt.Sprint(id))
		}
	}
	if len(outside) > 0 {
		sort.Strings(outside)
		v.errorf("ids outside [0, %d): %s", len(v.cards), strings.Join(outside, ", "))
		return
	}

	if outOfOrder && len(seen) == len(v.cards) {
		v.warnf("ids are not in array order")
	}
}

func (v *Validator) validateActions() {
	for _, c := range v.cards {
		if c.Type == card.Action && c.Value < 1 {
			v.errorf("action %q (id %d) must have a value of at least 1", c.Title, c.ID)
		}
	}
}

func (v *Validator) validateProperties() {
	for _, c := range v.cards {
		if c.Type != card.Property {
			continue
		}
		if c.IsWildcard() {
			if c.Value == 0 && !c.Color.IsRainbow() {
				v.warnf("wildcard %s (id %d) has no value", c.Color, c.ID)
			}
			continue
		}
		if c.Value < 1 {
			v.errorf("property %s (id %d) must have a value of at least 1", c.Color, c.ID)
		}
	}
}

func (v *Validator) validateRent() {
	for _, c := range v.cards {
		if c.Type != card.Rent {
			continue
		}
		want := deck.PairRentDescription
		if c.Color.IsRainbow() {
			want = deck.RainbowRentDescription
		}
		if c.Description != want {
			v.errorf("rent %s (id %d) should be described as %q, got %q", c.Color, c.ID, want, c.Description)
		}
	}
}

// groupRank orders the card groups the way the generator emits them
func groupRank(c card.Card) int {
	switch {
	case c.Type == card.Property && !c.IsWildcard():
		return 0
	case c.Type == card.Property:
		return 1
	case c.Type == card.Rent:
		return 2
	case c.Type == card.Action:
		return 3
	default:
		return 4
	}
}

func (v *Validator) validateGroupOrder() {
	for i := 1; i < len(v.cards); i++ {
		if groupRank(v.cards[i]) < groupRank(v.cards[i-1]) {
			v.warnf("card %d (%s) appears after card %d (%s); expected properties, wildcards, rent, action, money",
				v.cards[i].ID, v.cards[i].Name(), v.cards[i-1].ID, v.cards[i-1].Name())
			return
		}
	}
}

// compareBuiltin warns when a valid catalog is stale relative to the built-in tables
func (v *Validator) compareBuiltin() {
	if !v.Results.Valid() {
		return
	}
	if !deck.MatchesBuiltin(v.cards) {
		v.warnf("catalog differs from the built-in card tables; regenerate it with 'dealdeck'")
	}
}
