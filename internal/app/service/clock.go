package service

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// Clock supplies the current time. Injected so expiry behaviour can be
// tested without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// IDGenerator mints link ids.
type IDGenerator interface {
	NewID() string
}

// LinkIDGenerator produces ids of the form <time36>-<rand12>-<rand6>:
// a base-36 millisecond timestamp prefix followed by random hex. The
// time component keeps ids roughly sortable; the entropy makes
// collisions negligible.
type LinkIDGenerator struct {
	clock Clock
}

func NewLinkIDGenerator(clock Clock) *LinkIDGenerator {
	return &LinkIDGenerator{clock: clock}
}

func (g *LinkIDGenerator) NewID() string {
	ts := strconv.FormatInt(g.clock.Now().UnixMilli(), 36)
	return ts + "-" + randomHex(6) + "-" + randomHex(3)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; panicking here
		// beats handing out guessable ids.
		panic(err)
	}
	return hex.EncodeToString(b)
}
