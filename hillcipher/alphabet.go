package hillcipher

import (
	"fmt"

	"github.com/MathNerdGamer/hill-cipher/field"
)

// Alphabet is the fixed 97-symbol character set. The byte at index i
// corresponds to the field element i, so the string doubles as the
// element-to-character table.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" ~-=!@#$%^&*()_+[];',./{}:\"<>?`\\|\t\n"

var charToIndex = func() map[byte]int64 {
	m := make(map[byte]int64, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = int64(i)
	}
	return m
}()

// CharToField maps a character to its field element, failing with
// ErrUnknownCharacter for bytes outside the alphabet.
func CharToField(c byte) (field.Element, error) {
	idx, ok := charToIndex[c]
	if !ok {
		return nil, fmt.Errorf("character %q: %w", c, ErrUnknownCharacter)
	}
	return Z97.FromInt(idx), nil
}

// FieldToChar maps a field element back to its character. The mapping
// is total over Z/97: every element has a character.
func FieldToChar(e field.Element) byte {
	return Alphabet[e.Uint()]
}
