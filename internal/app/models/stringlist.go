package models

import (
	"encoding/json"
	"strings"
)

// StringList is an ordered list of strings persisted as JSON-encoded text.
// Clients send these fields either as a native JSON array or as a
// JSON-encoded string (multipart forms), so decoding is tolerant: anything
// that cannot be parsed becomes an empty list rather than an error.
type StringList []string

// UnmarshalJSON accepts both a native array and a JSON string wrapping one.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseStringList(s)
		return nil
	}

	*l = StringList{}
	return nil
}

// ParseStringList decodes a JSON-encoded array from a raw string value,
// as received in multipart form fields. Invalid input yields an empty list.
func ParseStringList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}
	return StringList{}
}

// Encode serializes the list to the JSON text stored in the database.
// A nil list encodes as an empty array, never as "null".
func (l StringList) Encode() string {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeStringList decodes the stored JSON text back to a native list.
func DecodeStringList(stored string) StringList {
	return ParseStringList(stored)
}

// Contains reports whether the list holds the exact value.
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Education is one entry of a member's university education history.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// EducationList is persisted the same way as StringList: JSON text in a
// single column, decoded on every read and encoded on every write.
type EducationList []Education

// UnmarshalJSON accepts a native array or a JSON string wrapping one.
func (l *EducationList) UnmarshalJSON(data []byte) error {
	var arr []Education
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseEducationList(s)
		return nil
	}

	*l = EducationList{}
	return nil
}

// ParseEducationList decodes a JSON-encoded array from a raw string value.
func ParseEducationList(raw string) EducationList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return EducationList{}
	}

	var arr []Education
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}
	return EducationList{}
}

// DecodeEducationList decodes the stored JSON text back to a native list.
func DecodeEducationList(stored string) EducationList {
	return ParseEducationList(stored)
}

// Encode serializes the list to the JSON text stored in the database.
func (l EducationList) Encode() string {
	if l == nil {
		l = EducationList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "[]"
	}
	return string(data)
}
