package music

// ChordTemplate names one of the 39 built-in generic chord patterns.
type ChordTemplate struct {
	Name string
	Mask ChordMask
}

// Catalog is the built-in set of 39 generic chord masks, preserved verbatim
// from the reference implementation's chord table, including its two known
// quirks: "Minor 6th + 5th" and "Minor 13th" share a mask, and two entries
// are both named "Major 9th" despite differing root structure. Callers
// should index by position, not rely on name uniqueness.
var Catalog = []ChordTemplate{
	{"Empty", 0b000000000000},
	{"6th", 0b001010010001},
	{"6th (no 5th)", 0b001000000101},
	{"6/9", 0b001000010101},
	{"Aug", 0b000100010001},
	{"Dim", 0b000001001001},
	{"Dim 7", 0b001000001001},
	{"Dim 7 + b5", 0b001001001001},
	{"Maj", 0b000010010001},
	{"Maj 3rd", 0b000000010001},
	{"Maj 7", 0b100000010001},
	{"Maj 7 + 5th", 0b100010010001},
	{"Maj 9th", 0b100000010101},
	{"Maj 9 + 5th", 0b100010010101},
	{"Maj Add 9", 0b000010010101},
	{"Maj Dom 7th", 0b010000010001},
	{"Maj Dom 7th + 5th", 0b010010010001},
	{"Maj 7b5", 0b010001010001},
	{"Maj 7/5", 0b010100010001},
	{"Maj 9th", 0b010000010101},
	{"Maj 7b9", 0b010000010011},
	{"Maj 7/9", 0b010000011001},
	{"Maj 13th", 0b011000010001},
	{"Min", 0b000010001001},
	{"Min 6th", 0b000100001001},
	{"Min 6th + 5th", 0b000110001001},
	{"Min 9th", 0b000010001101},
	{"Min 11th", 0b000010101001},
	{"Min 13th", 0b000110001001},
	{"Min 13th + 9th", 0b000110001101},
	{"Min 7th", 0b010000001001},
	{"Min 7th + 5th", 0b010010001001},
	{"Min 7b5", 0b010001001001},
	{"Min 7/5", 0b010100001001},
	{"Min 9", 0b010000001101},
	{"Min 7b9", 0b010000001011},
	{"Power chord", 0b000010000001},
	{"Sus", 0b000010100001},
	{"Sus2", 0b000010000101},
}
