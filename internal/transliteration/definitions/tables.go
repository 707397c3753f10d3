package definitions

// consonantTable maps Roman consonant keys to Bengali letters.
func consonantTable() map[string]string {
	return map[string]string{
		// velars
		"k":  "ক",
		"kh": "খ",
		"g":  "গ",
		"gh": "ঘ",
		"Ng": "ঙ",

		// palatals
		"c":  "চ",
		"ch": "ছ",
		"j":  "জ",
		"J":  "জ",
		"jh": "ঝ",
		"NG": "ঞ",

		// retroflexes
		"T":  "ট",
		"Th": "ঠ",
		"D":  "ড",
		"Dh": "ঢ",
		"N":  "ণ",

		// dentals
		"t":  "ত",
		"th": "থ",
		"d":  "দ",
		"dh": "ধ",
		"n":  "ন",

		// labials
		"p":  "প",
		"ph": "ফ",
		"f":  "ফ",
		"b":  "ব",
		"bh": "ভ",
		"v":  "ভ",
		"m":  "ম",

		// semivowels and liquids
		"z": "য",
		"r": "র",
		"l": "ল",

		// sibilants
		"sh": "শ",
		"S":  "শ",
		"Sh": "ষ",
		"s":  "স",
		"h":  "হ",

		// flapped and final forms
		"R":  "ড়",
		"Rh": "ঢ়",
		"y":  "য়",
		"Y":  "য়",
	}
}

// clusterTable maps special multi-consonant keys that behave as single
// consonants for conjunct formation.
func clusterTable() map[string]string {
	return map[string]string{
		"kkh": "ক্ষ",
		"ksh": "ক্ষ",
		"gg":  "জ্ঞ",
	}
}

// vowelTable maps Roman vowel keys to their written forms.
func vowelTable() map[string]Vowel {
	return map[string]Vowel{
		"o":   {Independent: "অ", Dependent: ""},
		"A":   {Independent: "আ", Dependent: "া"}, // া
		"a":   {Independent: "আ", Dependent: "া"},
		"i":   {Independent: "ই", Dependent: "ি"}, // ি
		"I":   {Independent: "ঈ", Dependent: "ী"}, // ী
		"u":   {Independent: "উ", Dependent: "ু"}, // ু
		"U":   {Independent: "ঊ", Dependent: "ূ"}, // ূ
		"rri": {Independent: "ঋ", Dependent: "ৃ"}, // ৃ
		"e":   {Independent: "এ", Dependent: "ে"}, // ে
		"OI":  {Independent: "ঐ", Dependent: "ৈ"}, // ৈ
		"O":   {Independent: "ও", Dependent: "ো"}, // ো
		"OU":  {Independent: "ঔ", Dependent: "ৌ"}, // ৌ
	}
}

// numeralTable maps ASCII digits to Bengali digits.
func numeralTable() map[rune]rune {
	return map[rune]rune{
		'0': '০',
		'1': '১',
		'2': '২',
		'3': '৩',
		'4': '৪',
		'5': '৫',
		'6': '৬',
		'7': '৭',
		'8': '৮',
		'9': '৯',
	}
}

// symbolTable maps punctuation with Bengali equivalents. Unmapped
// punctuation passes through verbatim.
func symbolTable() map[string]string {
	return map[string]string{
		".": "।",
		"$": "৳",
	}
}
