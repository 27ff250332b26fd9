package roast

import (
	"fmt"
	"math/rand"
)

// Compose builds the system prompt for one roast: the fixed preamble, the
// level's instruction fragment, and one flavor fragment picked uniformly at
// random from the gender's list. Repeated calls with the same inputs may
// return different prompts; that is the point.
func Compose(level Level, gender Gender) (string, error) {
	fragment, ok := FragmentForLevel(level)
	if !ok {
		return "", ErrUnknownLevel
	}

	flavors, ok := FlavorsFor(gender)
	if !ok {
		return "", ErrUnknownGender
	}

	flavor := flavors[rand.Intn(len(flavors))]

	return fmt.Sprintf("%s %s %s", Preamble, fragment, flavor), nil
}
