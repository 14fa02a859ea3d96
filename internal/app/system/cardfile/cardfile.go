// Package cardfile reads card definitions from YAML files:
//
//	cards:
//	  - title: Revenue
//	    value: 1200
//	    trend: up
//	    trend_value: 8%
//	  - title: Errors
//	    value: 3
//	    variant: destructive
//	    icon: alert
//
// Scalars are read as text, so value: 1200 becomes "1200".
package cardfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"gopkg.in/yaml.v3"
)

// ErrNoCards is returned when a file parses but defines no cards.
var ErrNoCards = errors.New("card file defines no cards")

type document struct {
	Cards []inputval.CardInput `yaml:"cards"`
}

// Parse decodes and validates every card in r. The first invalid entry
// aborts parsing; its error names the entry's position and title.
func Parse(r io.Reader) ([]inputval.CardInput, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCards
		}
		return nil, fmt.Errorf("decode card file: %w", err)
	}
	if len(doc.Cards) == 0 {
		return nil, ErrNoCards
	}

	cards := make([]inputval.CardInput, 0, len(doc.Cards))
	for i, c := range doc.Cards {
		c = c.Normalize()
		if res := inputval.Validate(c); res.HasErrors() {
			return nil, fmt.Errorf("card %d (%q): %s", i+1, c.Title, res.All())
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Load opens path and parses it.
func Load(path string) ([]inputval.CardInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
