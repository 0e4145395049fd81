package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
	}{
		{
			name:     "native array",
			input:    `["A. Martin", "B. Dupont"]`,
			expected: StringList{"A. Martin", "B. Dupont"},
		},
		{
			name:     "json string wrapping array",
			input:    `"[\"A. Martin\", \"B. Dupont\"]"`,
			expected: StringList{"A. Martin", "B. Dupont"},
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: StringList{},
		},
		{
			name:     "empty string",
			input:    `""`,
			expected: StringList{},
		},
		{
			name:     "garbage string",
			input:    `"not json at all"`,
			expected: StringList{},
		},
		{
			name:     "number yields empty list",
			input:    `42`,
			expected: StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			err := json.Unmarshal([]byte(tt.input), &list)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestStringListEncodeRoundTrip(t *testing.T) {
	original := StringList{"X. Leroy", "Y. Bernard"}
	decoded := DecodeStringList(original.Encode())
	assert.Equal(t, original, decoded)
}

func TestStringListEncodeNil(t *testing.T) {
	var list StringList
	assert.Equal(t, "[]", list.Encode())
}

func TestDecodeStringListInvalid(t *testing.T) {
	assert.Equal(t, StringList{}, DecodeStringList("not valid json"))
	assert.Equal(t, StringList{}, DecodeStringList(""))
	assert.Equal(t, StringList{}, DecodeStringList("   "))
}

func TestStringListContains(t *testing.T) {
	list := StringList{"A. Martin", "B. Dupont"}
	assert.True(t, list.Contains("A. Martin"))
	assert.False(t, list.Contains("a. martin"))
	assert.False(t, list.Contains("C. Petit"))
}

func TestEducationListUnmarshal(t *testing.T) {
	var list EducationList
	err := json.Unmarshal([]byte(`[{"degree":"PhD","institution":"ENIT","year":"2015"}]`), &list)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PhD", list[0].Degree)
	assert.Equal(t, "ENIT", list[0].Institution)
	assert.Equal(t, "2015", list[0].Year)
}

func TestEducationListUnmarshalFromString(t *testing.T) {
	var list EducationList
	err := json.Unmarshal([]byte(`"[{\"degree\":\"Master\",\"institution\":\"FST\",\"year\":\"2010\"}]"`), &list)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Master", list[0].Degree)
}

func TestEducationListEncodeRoundTrip(t *testing.T) {
	original := EducationList{{Degree: "PhD", Institution: "ENIT", Year: "2015"}}
	decoded := DecodeEducationList(original.Encode())
	assert.Equal(t, original, decoded)
}

func TestEducationListEncodeNil(t *testing.T) {
	var list EducationList
	assert.Equal(t, "[]", list.Encode())
}
