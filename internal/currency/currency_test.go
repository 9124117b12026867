package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgmendoza/recaudo/internal/currency"
)

func TestParseCents(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantNil bool
		wantErr bool
	}

	tests := []testCase{
		{name: "USGrouping", input: "1,234.56", want: 123456},
		{name: "EuropeanGrouping", input: "1.234,56", want: 123456},
		{name: "DollarSign", input: "$1234.56", want: 123456},
		{name: "CurrencyCode", input: "MXN 1234.56", want: 123456},
		{name: "NonBreakingSpace", input: "$ 1,500.00", want: 150000},
		{name: "CommaDecimal", input: "12,50", want: 1250},
		{name: "PlainInteger", input: "500", want: 50000},
		{name: "RoundsHalfUp", input: "10.005", want: 1001},
		{name: "Blank", input: "", wantNil: true},
		{name: "OnlySymbol", input: "$", wantNil: true},
		{name: "Garbage", input: "abc", wantErr: true},
		{name: "DoubleDot", input: "12..34", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currency.ParseCents(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, currency.ErrInvalid)
				return
			}

			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseCents_EquivalentNotations(t *testing.T) {
	// All three notations from the upload forms must agree.
	for _, in := range []string{"1,234.56", "1.234,56", "$1234.56"} {
		got, err := currency.ParseCents(in)
		require.NoError(t, err, in)
		require.NotNil(t, got, in)
		assert.Equal(t, int64(123456), *got, in)
	}
}

func TestFormatCents(t *testing.T) {
	v := int64(123456)
	assert.Equal(t, "1234.56", currency.FormatCents(&v))

	zero := int64(0)
	assert.Equal(t, "0.00", currency.FormatCents(&zero))

	assert.Equal(t, "", currency.FormatCents(nil))
}
