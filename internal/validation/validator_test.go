package validation

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moneyForm struct {
	Amount   string `json:"amount" validate:"required,money"`
	Currency string `json:"currency" validate:"omitempty,currency_code"`
	Date     string `json:"date" validate:"omitempty,date"`
}

func TestValidator_Money(t *testing.T) {
	v := NewValidator().GetValidate()

	testCases := []struct {
		amount string
		valid  bool
	}{
		{"100", true},
		{"100.5", true},
		{"-42.10", true},
		{"0.00", true},
		{"1.005", false},
		{"ten", false},
		{"1e3", true},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			err := v.Struct(moneyForm{Amount: tc.amount})
			assert.Equal(t, tc.valid, err == nil, "amount %q", tc.amount)
		})
	}
}

func TestValidator_CurrencyCode(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(moneyForm{Amount: "1", Currency: "USD"}))
	assert.NoError(t, v.Struct(moneyForm{Amount: "1", Currency: "eur"}))
	assert.Error(t, v.Struct(moneyForm{Amount: "1", Currency: "US1"}))
	assert.Error(t, v.Struct(moneyForm{Amount: "1", Currency: "DOLLAR"}))
}

func TestValidator_DateAndJSONFieldNames(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(moneyForm{Amount: "1", Date: "2024-06-14"}))
	assert.NoError(t, v.Struct(moneyForm{Amount: "1", Date: "2024-06-14T10:00:00+02:00"}))

	err := v.Struct(moneyForm{Amount: "1", Date: "14/06/2024"})
	require.Error(t, err)
	fieldErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "date", fieldErrs[0].Field())
	assert.Equal(t, "date", fieldErrs[0].Tag())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-06-14T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-06-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("June 14")
	assert.Error(t, err)
}
