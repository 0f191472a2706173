package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var adjectives = []string{
	"Ancient", "Bright", "Curious", "Dizzy", "Electric", "Fuzzy",
	"Gentle", "Hidden", "Jolly", "Kind", "Lucky", "Mighty", "Noisy",
	"Odd", "Proud", "Quick", "Rare", "Silly", "Tiny", "Vivid", "Witty",
}

var nouns = []string{
	"Falcon", "Wanderer", "Otter", "Nebula", "Shadow", "Wizard",
	"Phoenix", "Koala", "Comet", "Knight", "Golem", "Tiger", "Cloud",
	"Blizzard", "Cricket", "Raven", "Puma", "Cobra", "Breeze", "Flame",
}

var suffixes = []string{"x", "v2", "alpha", "42", "99", "zero", "nova", "2025"}

var firstNames = []string{
	"Lena", "Kai", "Nova", "Arlo", "Sasha", "Ezra", "Rhea", "Juno", "Milo", "Niko",
	"Lyra", "Theo", "Astra", "Orin", "Zara", "Calix", "Nia", "Elio", "Tova", "Kian",
}

var lastNames = []string{
	"Moon", "Wraith", "Redwood", "Stone", "Nightwalker", "Flameborn", "Storm",
	"Dusk", "Ironwood", "Ashcroft", "Winter", "Blackthorn", "Starling",
	"Brightwind", "Frost", "Hollow", "Raven", "Skydancer", "Thorne", "Wolfhart",
}

// Username composes a random display name from the word tables, a
// number in [10, 9999) and one of five layouts. The result is non-empty
// ASCII with no whitespace; the underscore layout is the only one that
// inserts separators. Collisions across calls are possible and
// acceptable.
func Username() string {
	adj := pick(adjectives)
	noun := pick(nouns)
	num := 10 + rand.IntN(9989)
	suffix := pick(suffixes)

	switch rand.IntN(5) {
	case 0:
		return fmt.Sprintf("%s%s%d", adj, noun, num)
	case 1:
		return fmt.Sprintf("%s_%s_%d", strings.ToLower(adj), strings.ToLower(noun), num)
	case 2:
		return adj + noun + suffix
	case 3:
		return fmt.Sprintf("%s%d%s", noun, num, adj)
	default:
		return fmt.Sprintf("%s%s%s%d", suffix, adj, noun, num)
	}
}

// FirstName returns a random given name.
func FirstName() string {
	return pick(firstNames)
}

// LastName returns a random family name.
func LastName() string {
	return pick(lastNames)
}

// FullName returns "First Last" with a single separating space.
func FullName() string {
	return FirstName() + " " + LastName()
}
