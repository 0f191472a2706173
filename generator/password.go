package generator

import "math/rand/v2"

// Character classes a generated password draws from. Every password
// contains at least one character from each class.
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?/"
)

// MinPasswordLength is the shortest password Password will produce.
const MinPasswordLength = 8

// Password returns a random password of exactly length characters,
// guaranteed to contain at least one uppercase letter, one lowercase
// letter, one digit and one symbol. A length below MinPasswordLength is
// a caller bug and panics.
func Password(length int) string {
	if length < MinPasswordLength {
		panic("generator: password length must be at least 8")
	}

	buf := make([]byte, 0, length)

	// One from each class first, so the guarantee holds whatever the
	// fill picks.
	buf = append(buf,
		pick([]byte(upperChars)),
		pick([]byte(lowerChars)),
		pick([]byte(digitChars)),
		pick([]byte(symbolChars)),
	)

	all := []byte(upperChars + lowerChars + digitChars + symbolChars)
	for i := len(buf); i < length; i++ {
		buf = append(buf, pick(all))
	}

	// Shuffle so the class-guaranteed characters are not pinned to the
	// first four positions.
	rand.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return string(buf)
}
