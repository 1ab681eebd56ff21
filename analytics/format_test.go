package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLira(t *testing.T) {
	assert.Equal(t, "₺0,00", FormatLira(0))
	assert.Equal(t, "₺12,34", FormatLira(1234))
	assert.Equal(t, "₺1.234,56", FormatLira(123456))
	assert.Equal(t, "₺1.250.000,00", FormatLira(125000000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "%0,0", FormatPercent(0))
	assert.Equal(t, "%33,3", FormatPercent(33.3))
	assert.Equal(t, "%100,0", FormatPercent(100))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "42", FormatCount(42))
	assert.Equal(t, "42.000", FormatCount(42000))
}
