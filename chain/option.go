package chain

import (
	"github.com/go-logr/logr"

	"github.com/db47h/phonebook/hash"
)

// Option configures a Directory, see New.
type Option interface {
	set(*option)
}

type optFunc func(*option)

func (f optFunc) set(o *option) {
	f(o)
}

type option struct {
	capacity int
	logger   logr.Logger
}

func getOpts(opts []Option) *option {
	o := &option{
		capacity: hash.MinCapacity,
		logger:   logr.Discard(),
	}
	for _, op := range opts {
		op.set(o)
	}
	return o
}

// Capacity sets the initial number of buckets. It is rounded up to the next
// prime, with a minimum of hash.MinCapacity. Clear always resets the directory
// to hash.MinCapacity buckets.
func Capacity(n int) Option {
	return optFunc(func(o *option) {
		o.capacity = hash.RoundCapacity(n)
	})
}

// Logger sets the logger used to report rehashes.
func Logger(l logr.Logger) Option {
	return optFunc(func(o *option) {
		o.logger = l
	})
}
