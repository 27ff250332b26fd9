package roast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_AllPairs(t *testing.T) {
	for _, level := range Levels() {
		for _, gender := range Genders() {
			prompt, err := Compose(level, gender)
			require.NoError(t, err, "level=%s gender=%s", level, gender)

			fragment, ok := FragmentForLevel(level)
			require.True(t, ok)

			assert.NotEmpty(t, prompt)
			assert.Contains(t, prompt, Preamble)
			assert.Contains(t, prompt, fragment)
		}
	}
}

func TestCompose_PicksDifferentFlavors(t *testing.T) {
	flavors, ok := FlavorsFor(GenderMale)
	require.True(t, ok)
	require.Greater(t, len(flavors), 1)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		prompt, err := Compose(LevelMedium, GenderMale)
		require.NoError(t, err)

		for _, flavor := range flavors {
			if len(prompt) >= len(flavor) && prompt[len(prompt)-len(flavor):] == flavor {
				seen[flavor] = true
			}
		}
	}

	// Uniform selection over 3 flavors practically never sticks to one
	// across 100 draws.
	assert.Greater(t, len(seen), 1, "expected more than one distinct flavor over 100 draws")
}

func TestCompose_UnknownLevel(t *testing.T) {
	_, err := Compose(Level("extreme"), GenderMale)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestCompose_UnknownGender(t *testing.T) {
	_, err := Compose(LevelMild, Gender("other"))
	assert.ErrorIs(t, err, ErrUnknownGender)
}

func TestCatalog_Closed(t *testing.T) {
	assert.Len(t, Levels(), 3)
	assert.Len(t, Genders(), 2)

	for _, level := range Levels() {
		fragment, ok := FragmentForLevel(level)
		assert.True(t, ok)
		assert.NotEmpty(t, fragment)
	}
	for _, gender := range Genders() {
		flavors, ok := FlavorsFor(gender)
		assert.True(t, ok)
		assert.Len(t, flavors, 3)
	}

	_, ok := FragmentForLevel("nuclear")
	assert.False(t, ok)
	_, ok = FlavorsFor("unknown")
	assert.False(t, ok)
}
