package enums

import "fmt"

// BeerStyle represents the canonical style tags supported by the catalog.
type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

var validBeerStyles = []BeerStyle{
	BeerStyleLager,
	BeerStylePilsner,
	BeerStyleStout,
	BeerStyleGose,
	BeerStylePorter,
	BeerStyleAle,
	BeerStyleWheat,
	BeerStyleIPA,
	BeerStylePaleAle,
	BeerStyleSaison,
}

// String implements fmt.Stringer.
func (s BeerStyle) String() string {
	return string(s)
}

// IsValid reports whether the value is a known BeerStyle.
func (s BeerStyle) IsValid() bool {
	for _, candidate := range validBeerStyles {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseBeerStyle converts raw input into a BeerStyle.
func ParseBeerStyle(value string) (BeerStyle, error) {
	for _, candidate := range validBeerStyles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid beer style %q", value)
}
