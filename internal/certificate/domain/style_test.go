package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

func TestParseStyle(t *testing.T) {
	t.Run("accepts every enumerated style", func(t *testing.T) {
		for _, style := range Styles() {
			parsed, err := ParseStyle(string(style))
			require.NoError(t, err)
			assert.Equal(t, style, parsed)
		}
	})

	t.Run("rejects unknown style", func(t *testing.T) {
		_, err := ParseStyle("unknown")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("rejects empty style", func(t *testing.T) {
		_, err := ParseStyle("")
		assert.Error(t, err)
	})
}

func TestStyleTableInvariants(t *testing.T) {
	styles := Styles()
	require.Len(t, styles, 7)

	sawCompact := false
	sawNoDate := false

	for _, style := range styles {
		def, err := Definition(style)
		require.NoError(t, err, "style %s", style)

		// Mandatory slots carry usable fonts and positive layout values
		for name, slot := range map[string]TextSlot{
			"name":        def.Name,
			"degree":      def.Degree,
			"achievement": def.Achievement,
		} {
			_, _, ok := slot.Font.Face()
			assert.True(t, ok, "style %s slot %s has unknown font", style, name)
			assert.Greater(t, slot.Size, 0.0, "style %s slot %s", style, name)
			assert.Greater(t, slot.OffsetY, 0.0, "style %s slot %s", style, name)
			assert.Less(t, slot.OffsetY, PageHeight, "style %s slot %s", style, name)
		}

		if def.Date != nil {
			_, _, ok := def.Date.Font.Face()
			assert.True(t, ok, "style %s date slot has unknown font", style)
		} else {
			sawNoDate = true
		}

		if def.Transform == TransformCompact {
			sawCompact = true
		}

		assert.NotEmpty(t, def.Background, "style %s has no background asset", style)
	}

	assert.True(t, sawNoDate, "at least one style must omit the date line")
	assert.True(t, sawCompact, "exactly the tech style uses the compact transform")
}

func TestTechStyleUsesCompactTransformWithoutDate(t *testing.T) {
	def, err := Definition(StyleTech)
	require.NoError(t, err)

	assert.Equal(t, TransformCompact, def.Transform)
	assert.Nil(t, def.Date)
}

func TestDefinitionUnknownStyle(t *testing.T) {
	_, err := Definition(Style("polka"))
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestFontFaces(t *testing.T) {
	family, styleStr, ok := FontSerifBold.Face()
	require.True(t, ok)
	assert.Equal(t, "Times", family)
	assert.Equal(t, "B", styleStr)

	family, styleStr, ok = FontSansOblique.Face()
	require.True(t, ok)
	assert.Equal(t, "Helvetica", family)
	assert.Equal(t, "I", styleStr)

	_, _, ok = FontID("comic-sans").Face()
	assert.False(t, ok)
}
