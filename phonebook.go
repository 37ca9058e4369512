// Copyright (c) 2016-2025 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package phonebook implements a two-way phone directory.
//
// Names are resolved to phone numbers by a separate chaining hash table
// (package chain) and phone numbers to names by a cuckoo hash table (package
// cuckoo). A Book keeps both in sync. Neither table supports deletion, and a
// Book is not safe for concurrent use.
package phonebook

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-logr/logr"

	"github.com/db47h/phonebook/chain"
	"github.com/db47h/phonebook/cuckoo"
)

// NotFound is returned by LookupPhone for unknown phone numbers.
const NotFound = cuckoo.NotFound

// Target selects one of the directories of a Book.
type Target int

const (
	ByName  Target = iota // name to phone numbers directory
	ByPhone               // phone number to name directory
)

// Book is a two-way phone directory.
type Book struct {
	names  *chain.Directory
	phones *cuckoo.Directory
	// registered phone numbers, so that only likely duplicates pay for a
	// lookup in phones.
	seen *bloom.BloomFilter
	dups int
	log  logr.Logger
}

// New returns an empty Book.
func New(opts ...Option) *Book {
	o := getOpts(opts)
	return &Book{
		names:  chain.New(chain.Logger(o.logger)),
		phones: cuckoo.New(cuckoo.Logger(o.logger)),
		seen:   bloom.NewWithEstimates(o.expected, o.fpRate),
		log:    o.logger.WithName("phonebook"),
	}
}

// Register records phone as belonging to name in both directories.
//
// Registering a phone number that is already registered logs a warning and
// shadows the previous owner in LookupPhone; both registrations are kept. A
// third registration of the same phone number never returns, see package
// cuckoo.
func (b *Book) Register(name, phone string) {
	if b.seen.TestString(phone) {
		if owner, ok := b.phones.Search(phone); ok {
			b.dups++
			b.log.Info("phone number already registered", "phone", phone, "owner", owner, "name", name)
		}
	}
	b.names.Insert(chain.Entry{Name: name, Phone: phone})
	b.phones.Insert(cuckoo.Entry{Phone: phone, Name: name})
	b.seen.AddString(phone)
}

// LookupPhone returns the name registered for phone, or NotFound.
func (b *Book) LookupPhone(phone string) string {
	return b.phones.Lookup(phone)
}

// SearchName returns the phone numbers registered to name in ascending
// order.
func (b *Book) SearchName(name string) []string {
	return b.names.Search(name)
}

// Rehash grows the directory selected by t. Any t other than ByName selects
// the phone directory.
func (b *Book) Rehash(t Target) {
	if t == ByName {
		b.names.Rehash()
		return
	}
	b.phones.Rehash()
}

// Dump returns the textual dump of the directory selected by t, see
// chain.Directory.String and cuckoo.Directory.String. Any t other than ByName
// selects the phone directory.
func (b *Book) Dump(t Target) string {
	if t == ByName {
		return b.names.String()
	}
	return b.phones.String()
}

// Reset empties both directories and resets them to their initial capacity.
func (b *Book) Reset() {
	b.names.Clear()
	b.phones.Clear()
	b.seen.ClearAll()
	b.dups = 0
	b.log.V(1).Info("reset")
}

// Capacity returns the capacity of the directory selected by t: the number
// of buckets for ByName, the number of slots per table otherwise.
func (b *Book) Capacity(t Target) int {
	if t == ByName {
		return b.names.Capacity()
	}
	return b.phones.Capacity()
}

// Len returns the number of entries in the directory selected by t.
func (b *Book) Len(t Target) int {
	if t == ByName {
		return b.names.Len()
	}
	return b.phones.Len()
}

// Duplicates returns the number of registrations of an already registered
// phone number since the Book was created or last reset.
func (b *Book) Duplicates() int { return b.dups }
