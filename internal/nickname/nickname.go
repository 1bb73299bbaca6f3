// Package nickname makes friendly display names for anonymous players.
package nickname

import (
	"crypto/rand"
	"math/big"
	"strings"
)

var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cozy", "swift", "clever", "jolly",
	"lucky", "magic", "bouncy", "cheerful", "gentle", "merry", "sparkly", "sleepy",
	"tiny", "fluffy", "curious", "dreamy", "giggly", "kind", "rosy", "starry",
}

var animals = []string{
	"otter", "panda", "kitten", "puppy", "bunny", "koala", "penguin", "fox",
	"owl", "hamster", "duckling", "seal", "lamb", "squirrel", "dolphin", "tiger",
	"unicorn", "dragon", "bear", "lion", "whale", "turtle", "hedgehog", "parrot",
}

// Generate returns a random "Adjective Animal" name such as "Sunny Otter"
func Generate() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	animal, err := randomElement(animals)
	if err != nil {
		return "", err
	}

	return title(adjective) + " " + title(animal), nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
