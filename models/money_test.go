package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"0", 0},
		{"0.00", 0},
		{"12.34", 1234},
		{"12,34", 1234},
		{"100", 10000},
		{"100.5", 10050},
		{".5", 50},
		{"  7.25 ", 725},
		// half-up on the third decimal
		{"1.005", 101},
		{"1.004", 100},
		{"1.0049", 100},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseCents_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "-1", "-0.01", "+5", "abc", "1.2.3", "12a.50", "1e3"} {
		_, err := ParseCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-12.34", Cents(-1234).String())
}

func TestCents_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Amount Cents `json:"amount"`
	}{Amount: 1234})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 12.34}`, string(out))
}

func TestCents_UnmarshalJSON(t *testing.T) {
	var v struct {
		Amount Cents `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.34}`), &v))
	assert.Equal(t, Cents(1234), v.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "99,90"}`), &v))
	assert.Equal(t, Cents(9990), v.Amount)
}

func TestCents_Scan(t *testing.T) {
	var c Cents

	require.NoError(t, c.Scan(int64(42)))
	assert.Equal(t, Cents(4200), c)

	require.NoError(t, c.Scan(12.34))
	assert.Equal(t, Cents(1234), c)

	require.NoError(t, c.Scan([]byte("1234.56")))
	assert.Equal(t, Cents(123456), c)

	require.NoError(t, c.Scan("-7.50"))
	assert.Equal(t, Cents(-750), c)

	require.NoError(t, c.Scan(nil))
	assert.Equal(t, Cents(0), c)

	assert.Error(t, c.Scan(true))
}

func TestCents_Value(t *testing.T) {
	v, err := Cents(123456).Value()
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v)
}
