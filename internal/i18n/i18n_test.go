package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("en")
	require.NoError(t, err)
	return tr
}

func TestLocalize_EnglishUsesFallback(t *testing.T) {
	tr := newTranslator(t)

	msg := tr.Localize("en-US", "customer_created", "Customer added successfully", nil)
	assert.Equal(t, "Customer added successfully", msg)
}

func TestLocalize_Spanish(t *testing.T) {
	tr := newTranslator(t)

	msg := tr.Localize("es-ES,es;q=0.9", "customer_created", "Customer added successfully", nil)
	assert.Equal(t, "Cliente agregado con éxito", msg)

	msg = tr.Localize("es", "min", "First name must be at least 2 characters",
		map[string]any{"Field": "cus_firstname", "Param": "2"})
	assert.Equal(t, "cus_firstname debe tener al menos 2 caracteres", msg)
}

func TestLocalize_UnknownIDFallsBack(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "plain", tr.Localize("es", "no_such_message", "plain", nil))
	assert.Equal(t, "plain", tr.Localize("es", "", "plain", nil))
}

func TestLocalize_FallbackIsNotATemplate(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "literal {{.X}}", tr.Localize("en", "unknown", "literal {{.X}}", nil))
}
