package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain number", input: `{"value": 100.50}`, expected: "100.5"},
		{name: "quoted number", input: `{"value": "250"}`, expected: "250"},
		{name: "zero", input: `{"value": 0}`, expected: "0"},
		{name: "garbage string becomes zero", input: `{"value": "abc"}`, expected: "0"},
		{name: "negative becomes zero", input: `{"value": -50}`, expected: "0"},
		{name: "null becomes zero", input: `{"value": null}`, expected: "0"},
		{name: "empty string becomes zero", input: `{"value": ""}`, expected: "0"},
		{name: "missing field stays zero", input: `{}`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Value Amount `json:"value"`
			}

			err := json.Unmarshal([]byte(tt.input), &payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload.Value.String())
		})
	}
}
