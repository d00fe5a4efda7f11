package fiscalcode

import "time"

// Positional layout of a 16-character code (0-based):
//
//	0-2  surname consonants/vowels
//	3-5  given name consonants/vowels
//	6-7  birth year (two digits)
//	8    birth month letter
//	9-10 birth day, +40 for female
//	11   place code letter
//	12-14 place code digits
//	15   check character
//
// digitPositions are the seven positions that canonically hold digits and are
// therefore the only positions subject to omocodia substitution.
var digitPositions = [7]int{6, 7, 9, 10, 12, 13, 14}

// alphaPositions canonically hold letters; a digit there is a shape violation
// and a letter there is never an omocodia artifact.
var alphaPositions = [9]int{0, 1, 2, 3, 4, 5, 8, 11, 15}

// oddValues maps each of the 36 possible characters to its checksum
// contribution at odd (1-based) positions. Digits and their substitute
// letters share a value so the checksum never requires prior omocodia
// normalization.
var oddValues = map[byte]int{
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9,
	'5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9,
	'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11,
	'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24,
	'Z': 23,
}

// evenValues maps each character to its checksum contribution at even
// (1-based) positions.
var evenValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4,
	'F': 5, 'G': 6, 'H': 7, 'I': 8, 'J': 9,
	'K': 10, 'L': 11, 'M': 12, 'N': 13, 'O': 14,
	'P': 15, 'Q': 16, 'R': 17, 'S': 18, 'T': 19,
	'U': 20, 'V': 21, 'W': 22, 'X': 23, 'Y': 24,
	'Z': 25,
}

// remainderChars maps sum%26 to the expected check character. The mapping is
// bijective over the 26 remainders; checksum_test.go asserts this.
var remainderChars = [26]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
	'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T',
	'U', 'V', 'W', 'X', 'Y', 'Z',
}

// monthByLetter maps the twelve valid month letters to calendar months. Any
// other letter in the month position is invalid.
var monthByLetter = map[byte]time.Month{
	'A': time.January,
	'B': time.February,
	'C': time.March,
	'D': time.April,
	'E': time.May,
	'H': time.June,
	'L': time.July,
	'M': time.August,
	'P': time.September,
	'R': time.October,
	'S': time.November,
	'T': time.December,
}

// omocodiaLetters maps each digit to its anti-collision substitute letter.
var omocodiaLetters = [10]byte{'L', 'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'U', 'V'}

// omocodiaDigits is the inverse mapping, letter back to digit.
var omocodiaDigits = map[byte]byte{
	'L': '0', 'M': '1', 'N': '2', 'P': '3', 'Q': '4',
	'R': '5', 'S': '6', 'T': '7', 'U': '8', 'V': '9',
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
