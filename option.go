package phonebook

import "github.com/go-logr/logr"

// Defaults for the filter of registered phone numbers.
const (
	DefaultExpectedEntries   = 1 << 12
	DefaultFalsePositiveRate = 0.01
)

// Option is the interface implemented by options passed to New.
type Option interface {
	set(*option)
}

type optFunc func(*option)

func (f optFunc) set(o *option) {
	f(o)
}

type option struct {
	logger   logr.Logger
	expected uint
	fpRate   float64
}

func getOpts(opts []Option) *option {
	o := &option{
		logger:   logr.Discard(),
		expected: DefaultExpectedEntries,
		fpRate:   DefaultFalsePositiveRate,
	}
	for _, op := range opts {
		op.set(o)
	}
	return o
}

// Logger sets the logger for the Book and both of its directories.
func Logger(l logr.Logger) Option {
	return optFunc(func(o *option) {
		o.logger = l
	})
}

// ExpectedEntries sets the number of registrations the filter of registered
// phone numbers is sized for. More registrations are fine, but increase the
// rate of registrations that need a phone directory lookup to rule out a
// duplicate.
func ExpectedEntries(n uint) Option {
	if n == 0 {
		panic("ExpectedEntries must be > 0")
	}
	return optFunc(func(o *option) {
		o.expected = n
	})
}

// FalsePositiveRate sets the target false positive rate of the filter of
// registered phone numbers.
func FalsePositiveRate(p float64) Option {
	if p <= 0 || 1 <= p {
		panic("FalsePositiveRate out of range (0, 1)")
	}
	return optFunc(func(o *option) {
		o.fpRate = p
	})
}
