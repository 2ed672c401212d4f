package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var Source = rand.NewSource(ginkgo.GinkgoRandomSeed())

var (
	Faker = faker.NewWithSeed(Source)
	Rand  = rand.New(Source)
)

// PastTimestamp returns a recent UTC timestamp truncated to millisecond
// precision, which is what mongo round-trips.
func PastTimestamp() time.Time {
	offset := time.Duration(Rand.Int63n(int64(24 * time.Hour)))
	return time.Now().UTC().Add(-offset).Truncate(time.Millisecond)
}
