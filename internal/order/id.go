package order

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const (
	idPrefix   = "AMC"
	idLength   = 8
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var idPattern = regexp.MustCompile(`^AMC[A-Z0-9]{8}$`)

var alphabetSize = big.NewInt(int64(len(idAlphabet)))

// NewID returns "AMC" followed by 8 uniformly random [A-Z0-9] characters.
func NewID() (string, error) {
	b := make([]byte, 0, len(idPrefix)+idLength)
	b = append(b, idPrefix...)
	for i := 0; i < idLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b = append(b, idAlphabet[n.Int64()])
	}
	return string(b), nil
}

// ValidID reports whether s has the shape of an order id.
func ValidID(s string) bool { return idPattern.MatchString(s) }
