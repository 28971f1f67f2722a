package webtest

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DataGenerator produces random test data from an explicit source, so tests
// can seed it for reproducibility instead of sharing hidden global state.
type DataGenerator struct {
	r *rand.Rand
}

// NewDataGenerator returns a generator seeded with seed.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{r: rand.New(rand.NewSource(seed))}
}

// Email returns an address of the form test<nnnn>@example.com.
func (g *DataGenerator) Email() string {
	return fmt.Sprintf("test%04d@example.com", g.r.Intn(10000))
}

// String returns a random string of exactly n alphanumeric characters.
func (g *DataGenerator) String(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphanumeric[g.r.Intn(len(alphanumeric))])
	}
	return b.String()
}
