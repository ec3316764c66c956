package patient

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const idPrefix = "PAT-"

// IDGenerator issues patient ids.
type IDGenerator interface {
	NewID() string
}

// GenerateID returns "PAT-" followed by the last six digits of t in epoch
// milliseconds.
func GenerateID(t time.Time) string {
	return formatMillis(t.UnixMilli())
}

func formatMillis(ms int64) string {
	return fmt.Sprintf("%s%06d", idPrefix, ms%1_000_000)
}

// TimestampGenerator derives ids from the clock. It never issues the same
// millisecond twice; if the clock has not advanced it uses the last value + 1.
type TimestampGenerator struct {
	now func() time.Time

	mu   sync.Mutex
	last int64
}

func NewTimestampGenerator(now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{now: now}
}

func (g *TimestampGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return formatMillis(ms)
}

// UUIDGenerator issues "PAT-" + eight upper-case hex characters of a random
// v4 uuid.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return idPrefix + strings.ToUpper(s[:8])
}

// ComputeAge returns the whole years between birth and asOf: the calendar
// year difference, less one when asOf's (month, day) falls before birth's.
func ComputeAge(birth, asOf time.Time) int {
	by, bm, bd := birth.Date()
	ay, am, ad := asOf.Date()

	age := ay - by
	if am < bm || (am == bm && ad < bd) {
		age--
	}
	return age
}
