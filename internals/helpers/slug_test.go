package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "waste-management", Slugify("Waste Management", 0))
	assert.Equal(t, "eco-quiz-2", Slugify("  Eco   Quiz 2! ", 0))
	assert.Equal(t, "ecole-verte", Slugify("École Verte", 0))
}

func TestSlugifyEmptyFallsBack(t *testing.T) {
	assert.Equal(t, "item", Slugify("", 0))
	assert.Equal(t, "item", Slugify("!!!", 0))
}

func TestSlugifyRespectsMaxLen(t *testing.T) {
	got := Slugify(strings.Repeat("green ", 40), 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"))
}
