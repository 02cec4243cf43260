package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOptMoney(t *testing.T) {
	v := 42.5
	assert.Equal(t, "$42.50", FormatOptMoney(&v))
	assert.Equal(t, "N/A", FormatOptMoney(nil))
}

func TestFormatOptNumber(t *testing.T) {
	v := 1.234
	assert.Equal(t, "1.23", FormatOptNumber(&v))
	assert.Equal(t, "N/A", FormatOptNumber(nil))

	zero := 0.0
	assert.Equal(t, "0.00", FormatOptNumber(&zero))
}

func TestFormatOptPctScalesFraction(t *testing.T) {
	v := 0.034
	assert.Equal(t, "3.40", FormatOptPct(&v))
	assert.Equal(t, "N/A", FormatOptPct(nil))
}

func TestFormatOptString(t *testing.T) {
	v := "Industrials"
	empty := ""
	assert.Equal(t, "Industrials", FormatOptString(&v))
	assert.Equal(t, "N/A", FormatOptString(&empty))
	assert.Equal(t, "N/A", FormatOptString(nil))
}
