package phonebook_test

import (
	"fmt"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/db47h/phonebook"
	"github.com/db47h/phonebook/hash"
)

type registration struct {
	name  string
	phone string
}

func registrations(n int) []registration {
	r := make([]registration, n)
	for i := range r {
		r[i] = registration{
			name:  fmt.Sprintf("person%d", i%(n/3+1)),
			phone: fmt.Sprintf("(%03d)%03d-%04d", 200+i%7, i%1000, i),
		}
	}
	return r
}

func populate(b *phonebook.Book, regs []registration) {
	for _, r := range regs {
		b.Register(r.name, r.phone)
	}
}

func checkBook(t *testing.T, b *phonebook.Book, regs []registration) {
	t.Helper()
	byName := make(map[string][]string)
	for _, r := range regs {
		require.Equal(t, r.name, b.LookupPhone(r.phone), r.phone)
		byName[r.name] = append(byName[r.name], r.phone)
	}
	for name, phones := range byName {
		got := b.SearchName(name)
		require.ElementsMatch(t, phones, got, name)
		require.IsIncreasing(t, got, name)
	}
}

func TestBook_Register(t *testing.T) {
	b := phonebook.New()
	b.Register("Ann", "(555) 111-0001")
	b.Register("Ann", "(555) 111-0002")
	require.Equal(t, []string{"(555) 111-0001", "(555) 111-0002"}, b.SearchName("Ann"))
	require.Equal(t, "Ann", b.LookupPhone("(555) 111-0001"))
	require.Equal(t, phonebook.NotFound, b.LookupPhone("(555) 999-9999"))
	require.Nil(t, b.SearchName("Bob"))
	require.Equal(t, 2, b.Len(phonebook.ByName))
	require.Equal(t, 2, b.Len(phonebook.ByPhone))

	regs := registrations(500)
	b = phonebook.New()
	populate(b, regs)
	checkBook(t, b, regs)
}

func TestBook_Rehash(t *testing.T) {
	regs := registrations(100)
	b := phonebook.New()
	populate(b, regs)
	names, phones := b.Capacity(phonebook.ByName), b.Capacity(phonebook.ByPhone)

	b.Rehash(phonebook.ByName)
	require.Equal(t, hash.Grow(names), b.Capacity(phonebook.ByName))
	require.Equal(t, phones, b.Capacity(phonebook.ByPhone))
	checkBook(t, b, regs)

	// any non zero target is the phone directory
	b.Rehash(phonebook.Target(42))
	require.Equal(t, hash.Grow(names), b.Capacity(phonebook.ByName))
	require.True(t, b.Capacity(phonebook.ByPhone) > 2*phones)
	require.True(t, hash.IsPrime(b.Capacity(phonebook.ByPhone)))
	checkBook(t, b, regs)
	require.Equal(t, b.Dump(phonebook.ByPhone), b.Dump(phonebook.Target(1)))
	require.NotEqual(t, b.Dump(phonebook.ByName), b.Dump(phonebook.ByPhone))
}

func TestBook_Reset(t *testing.T) {
	regs := registrations(100)
	b := phonebook.New()
	populate(b, regs)
	b.Rehash(phonebook.ByName)
	b.Rehash(phonebook.ByPhone)
	b.Reset()
	require.Equal(t, hash.MinCapacity, b.Capacity(phonebook.ByName))
	require.Equal(t, hash.MinCapacity, b.Capacity(phonebook.ByPhone))
	for _, r := range regs {
		require.Equal(t, phonebook.NotFound, b.LookupPhone(r.phone))
		require.Nil(t, b.SearchName(r.name))
	}
	populate(b, regs[:10])
	checkBook(t, b, regs[:10])
}

func TestBook_Register_duplicate(t *testing.T) {
	var lines []string
	l := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{})
	b := phonebook.New(phonebook.Logger(l))
	b.Register("Ann", "(555)111-0001")
	b.Register("Bob", "(555)222-0001")
	require.Empty(t, lines)
	require.Equal(t, 0, b.Duplicates())

	b.Register("Carol", "(555)111-0001")
	require.Equal(t, 1, b.Duplicates())
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"msg"="phone number already registered"`)
	require.Contains(t, lines[0], `"owner"="Ann"`)
	require.Contains(t, lines[0], `"name"="Carol"`)

	// both registrations are kept, the latest one shadows the first
	require.Equal(t, "Carol", b.LookupPhone("(555)111-0001"))
	require.Equal(t, 3, b.Len(phonebook.ByName))
	require.Equal(t, 3, b.Len(phonebook.ByPhone))
	require.Equal(t, []string{"(555)111-0001"}, b.SearchName("Ann"))

	b.Reset()
	require.Equal(t, 0, b.Duplicates())
	b.Register("Carol", "(555)111-0001")
	require.Equal(t, 0, b.Duplicates())
	require.Len(t, lines, 1)
}

// Filter false positives must not be reported as duplicates, and lookups
// never depend on the filter.
func TestBook_Register_falsePositives(t *testing.T) {
	regs := registrations(300)
	b := phonebook.New(phonebook.ExpectedEntries(1), phonebook.FalsePositiveRate(0.5))
	populate(b, regs)
	require.Equal(t, 0, b.Duplicates())
	checkBook(t, b, regs)
	for i := range 100 {
		require.Equal(t, phonebook.NotFound, b.LookupPhone(fmt.Sprintf("(999)999-%04d", i)))
	}
	b.Rehash(phonebook.ByPhone)
	checkBook(t, b, regs)
}

func TestOptions_panic(t *testing.T) {
	require.Panics(t, func() { phonebook.ExpectedEntries(0) })
	require.Panics(t, func() { phonebook.FalsePositiveRate(0) })
	require.Panics(t, func() { phonebook.FalsePositiveRate(1) })
	require.NotPanics(t, func() { phonebook.FalsePositiveRate(0.1) })
}

func TestBook_Logger(t *testing.T) {
	var lines []string
	l := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})
	b := phonebook.New(phonebook.Logger(l))
	b.Register("Ann", "(555)111-0001")
	b.Rehash(phonebook.ByName)
	b.Rehash(phonebook.ByPhone)
	b.Reset()
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "chain")
	require.Contains(t, lines[1], "cuckoo")
	require.Contains(t, lines[2], "phonebook")
	require.Contains(t, lines[2], `"msg"="reset"`)
}
