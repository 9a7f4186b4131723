package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	passwordChars = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	phoneDigits = "0123456789"
)

// Generator produces random test data. It is passed explicitly to whatever
// needs it instead of living as process-wide shared state.
type Generator struct {
	faker *gofakeit.Faker
	rand  *rand.Rand
}

// NewGenerator creates a generator seeded from the given value. A seed of 0
// seeds from the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		faker: gofakeit.New(uint64(seed)),
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Email returns a unique address of the form test<unix-epoch>@example.com.
func (g *Generator) Email() string {
	return fmt.Sprintf("test%d@example.com", time.Now().Unix())
}

// Name returns a random display name.
func (g *Generator) Name() string {
	return g.faker.Name()
}

// Password returns a random password of exactly length characters, drawn
// from letters, digits and punctuation.
func (g *Generator) Password(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = passwordChars[g.rand.Intn(len(passwordChars))]
	}
	return string(b)
}

// Phone returns a random local mobile number: the fixed 017 prefix followed
// by 8 random digits.
func (g *Generator) Phone() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = phoneDigits[g.rand.Intn(len(phoneDigits))]
	}
	return "017" + string(b)
}
