// Package hillcipher implements the Hill cipher over Z/97Z. Working
// modulo a prime means a key is usable exactly when its determinant is
// nonzero, unlike the classical mod-26 construction where the
// determinant must also be coprime to the modulus.
package hillcipher

import (
	"errors"
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/MathNerdGamer/hill-cipher/field"
)

var log = logging.Logger("hillcipher")

// Modulus is the order of the field the cipher works over.
const Modulus = 97

// Z97 is the field Z/97Z shared by every key and message block.
var Z97 = field.NewPrimeField(Modulus)

// ErrUnknownCharacter is returned when a message contains a byte
// outside the 97-symbol alphabet.
var ErrUnknownCharacter = errors.New("character not in alphabet")

// padSymbol fills the final block. Padding is not removed on
// decryption; callers must tolerate trailing spaces when the original
// length was not a multiple of the key size.
const padSymbol = " "

// NewKey builds a square key matrix over Z/97 from integer entries in
// row order. Negative entries reduce modulo 97. Ragged or non-square
// input fails with field.ErrDimensionMismatch.
func NewKey(rows [][]int64) (*field.Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty key: %w", field.ErrDimensionMismatch)
	}
	key := field.NewMatrix(Z97, n, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("key row %d has %d entries, want %d: %w", i, len(row), n, field.ErrDimensionMismatch)
		}
		for j, v := range row {
			if err := key.Set(i, j, Z97.FromInt(v)); err != nil {
				return nil, err
			}
		}
	}
	return key, nil
}

// Encrypt enciphers plaintext with the key by multiplying column-vector
// blocks of the message by the key matrix. The plaintext is padded on
// the right with spaces to a multiple of the key size, so the output
// length is the padded length.
func Encrypt(key *field.Matrix, plaintext string) (string, error) {
	if !key.IsSquare() {
		return "", fmt.Errorf("key is %dx%d, want square: %w", key.Rows(), key.Cols(), field.ErrDimensionMismatch)
	}
	size := key.Rows()

	if rem := len(plaintext) % size; rem != 0 {
		plaintext += strings.Repeat(padSymbol, size-rem)
	}
	log.Debugf("enciphering %d blocks of size %d", len(plaintext)/size, size)

	var ct strings.Builder
	ct.Grow(len(plaintext))

	block := field.NewMatrix(Z97, size, 1)
	for i := 0; i < len(plaintext); i += size {
		for j := 0; j < size; j++ {
			e, err := CharToField(plaintext[i+j])
			if err != nil {
				return "", err
			}
			if err := block.Set(j, 0, e); err != nil {
				return "", err
			}
		}
		cipher, err := key.Mul(block)
		if err != nil {
			return "", err
		}
		for j := 0; j < size; j++ {
			e, err := cipher.At(j, 0)
			if err != nil {
				return "", err
			}
			ct.WriteByte(FieldToChar(e))
		}
	}
	return ct.String(), nil
}

// Decrypt deciphers ciphertext by enciphering with the key's inverse.
// It fails with field.ErrNotInvertible for a singular key. The key is
// never modified, so it can be reused after the call.
func Decrypt(key *field.Matrix, ciphertext string) (string, error) {
	inv, err := key.Inverse()
	if err != nil {
		return "", err
	}
	return Encrypt(inv, ciphertext)
}

// IsValidKey reports whether the key is invertible. Only singularity
// maps to false; any other failure is surfaced as the error.
func IsValidKey(key *field.Matrix) (bool, error) {
	_, err := key.Inverse()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, field.ErrNotInvertible):
		return false, nil
	default:
		return false, err
	}
}
