package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyFor(t *testing.T) {
	assert.Equal(t, "SGD", CurrencyFor("SG"))
	assert.Equal(t, "USD", CurrencyFor("US"))
	assert.Equal(t, "EUR", CurrencyFor("DE"))
	assert.Equal(t, "JPY", CurrencyFor("jp"), "lookup is case-insensitive")
}

func TestCurrencyFor_UnknownDefaultsToSGD(t *testing.T) {
	assert.Equal(t, "SGD", CurrencyFor("XX"))
	assert.Equal(t, "SGD", CurrencyFor(""))
}
