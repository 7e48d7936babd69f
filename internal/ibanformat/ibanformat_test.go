package ibanformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMachine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already machine", "GB29NWBK60161331926819", "GB29NWBK60161331926819"},
		{"human format", "GB29 NWBK 6016 1331 9268 19", "GB29NWBK60161331926819"},
		{"lower case", "gb29nwbk60161331926819", "GB29NWBK60161331926819"},
		{"iban prefix", "IBAN GB29 NWBK 6016 1331 9268 19", "GB29NWBK60161331926819"},
		{"iiban prefix", "IIBAN AA11 0011 123Z 5678", "AA110011123Z5678"},
		{"lower case prefix", "iban: gb29-nwbk-6016-1331-9268-19", "GB29NWBK60161331926819"},
		{"surrounding whitespace", "  \tGB29NWBK60161331926819 \n", "GB29NWBK60161331926819"},
		{"punctuation", "GB29.NWBK/6016_1331-9268,19", "GB29NWBK60161331926819"},
		{"non latin letters dropped", "GB29ÄNWBKı60161331926819", "GB29NWBK60161331926819"},
		{"repeated prefix", "IBAN IBAN 12", "12"},
		{"prefix split by separator", "I-BAN GB29NWBK60161331926819", "GB29NWBK60161331926819"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMachine(tt.input))
		})
	}
}

func TestToHuman(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GB29NWBK60161331926819", "GB29 NWBK 6016 1331 9268 19"},
		{"GB29 NWBK 6016 1331 9268 19", "GB29 NWBK 6016 1331 9268 19"},
		{"BE68539007547034", "BE68 5390 0754 7034"},
		{"ABCD", "ABCD"},
		{"ABC", "ABC"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToHuman(tt.input))
		})
	}
}

func TestToObfuscated(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HU69107000246667654851100005", "HU** **** **** **** **** **** 0005"},
		{"GB29 NWBK 6016 1331 9268 19", "GB** **** **** **** **68 19"},
		{"iban be68539007547034", "BE** **** **** 7034"},
		{"AB1234", "AB12 34"},
		{"AB", "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToObfuscated(tt.input))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"GB29NWBK60161331926819",
		"iban fr14 2004 1010 0505 0001 3m02 606",
		"  de89-3704-0044-0532-0130-00 ",
		"x",
		"",
		"IIBAN",
		"ÄÖÜ 1234 abcd",
		"IBANIBAN12",
		"I-BAN IBAN GB29",
	}

	for _, in := range inputs {
		machine := ToMachine(in)
		assert.Equal(t, machine, ToMachine(ToHuman(machine)), "round trip of %q", in)
	}
}
