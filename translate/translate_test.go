package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocales(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_ENV, "fr-CA")
	assert.Equal([]string{"fr-CA"}, Locales())

	t.Setenv(LANG_ENV, "")
	assert.NotEmpty(Locales())
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Missing operand", From("Missing operand"))
	assert.Equal("(location 12) Bad", From("(location %v) %v", "12", "Bad"))
	assert.Same(Printer(), Printer())
}
