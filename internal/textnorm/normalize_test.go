package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n\t  "))
}

func TestNormalize_LineEndings(t *testing.T) {
	out := Normalize("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", out)
}

func TestNormalize_ExoticWhitespace(t *testing.T) {
	out := Normalize("hello world")
	assert.Equal(t, "hello world", out)

	out = Normalize("zero​width\ufeffgone")
	assert.Equal(t, "zerowidthgone", out)
}

func TestNormalize_TabsAndSpaceRuns(t *testing.T) {
	out := Normalize("a\t\tb    c")
	assert.Equal(t, "a b c", out)
}

func TestNormalize_BulletGlyphs(t *testing.T) {
	out := Normalize("● Led team\n▪ Built platform\n- untouched dash")
	assert.Equal(t, "• Led team\n• Built platform\n- untouched dash", out)
}

func TestNormalize_BlankLineCollapse(t *testing.T) {
	out := Normalize("Experience\n\n\n\n\nEducation")
	assert.Equal(t, "Experience\n\nEducation", out)
}

func TestNormalize_TrailingSpacesBeforeCollapse(t *testing.T) {
	// Lines of only spaces must count as blank for collapsing.
	out := Normalize("Experience\n   \n   \nEducation")
	assert.NotContains(t, out, "\n\n\n")
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"● Led team\r\n\r\n\r\n\tShipped product   fast",
		"EXPERIENCE\n• Did things\n\n\nEDUCATION",
		"plain text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalize_NoForbiddenCharactersRemain(t *testing.T) {
	out := Normalize("a b\tc\r\nd​e   f\n\n\n\ng")
	assert.False(t, strings.ContainsAny(out, "\r\t ​"))
	assert.NotContains(t, out, "  ")
	assert.NotContains(t, out, "\n\n\n")
}
