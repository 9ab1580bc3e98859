package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var out map[string]interface{}
	err := ParseJSON(`{"name":"Neem","score":9}`, &out)
	require.NoError(t, err)
	assert.Equal(t, "Neem", out["name"])
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var out map[string]interface{}
	err := ParseJSON(`{"a":1} {"b":2}`, &out)
	assert.Error(t, err)
}

func TestParseJSONStrictUnknownField(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := ParseJSONStrict(`{"name":"x","extra":true}`, &out)
	assert.Error(t, err)
}

func TestQuoteJSONKeys(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{name: "Neem"}`, `{"name": "Neem"}`},
		{`{"name": "Neem", score: 9}`, `{"name": "Neem", "score": 9}`},
		{`[{common_name: "Peepal"}]`, `[{"common_name": "Peepal"}]`},
		{`{"already": "quoted"}`, `{"already": "quoted"}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteJSONKeys(tt.in))
	}
}

func TestStringSliceToString(t *testing.T) {
	assert.Equal(t, "", StringSliceToString(nil))
	assert.Equal(t, "June, July", StringSliceToString([]string{"June", "July"}))
}
