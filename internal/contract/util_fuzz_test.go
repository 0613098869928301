package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzNormalizeRoute fuzzes the NormalizeRoute function with random route strings.
func FuzzNormalizeRoute(f *testing.F) {
	seeds := []string{
		"SYD-MEL",
		"syd-mel",
		"  syd - mel  ",
		"SYD-",
		"-MEL",
		"SYDMEL",
		"SYD-MEL-BNE",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, route string) {
		normalized, err := NormalizeRoute(route)
		if err != nil {
			return
		}

		// A successful normalization is canonical and stable.
		assert.Equal(t, strings.ToUpper(normalized), normalized)
		assert.Len(t, strings.Split(normalized, "-"), 2)

		again, err := NormalizeRoute(normalized)
		assert.NoError(t, err)
		assert.Equal(t, normalized, again)
	})
}
