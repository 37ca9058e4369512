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

// Package chain implements a directory mapping names to phone numbers with a
// separate chaining hash table.
//
// Each bucket holds the entries whose name folds to that bucket, sorted by
// phone number. The table has a prime number of buckets and only grows when
// Rehash is called.
package chain

import (
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/db47h/phonebook/hash"
)

// Entry is a name to phone number mapping.
type Entry struct {
	Name  string
	Phone string
}

// Directory is a name to phone numbers hash table. The zero value is not
// usable, use New. A Directory is not safe for concurrent use.
type Directory struct {
	buckets [][]Entry
	live    int
	log     logr.Logger
}

// New returns a new Directory configured with the given options.
func New(opts ...Option) *Directory {
	o := getOpts(opts)
	return &Directory{
		buckets: make([][]Entry, o.capacity),
		log:     o.logger.WithName("chain"),
	}
}

// Insert adds e to the directory. Entries are never merged: inserting the
// same name twice with different phone numbers keeps both.
func (d *Directory) Insert(e Entry) {
	i := hash.Name(e.Name, len(d.buckets))
	b := d.buckets[i]
	// first position whose phone is >= e.Phone
	p := 0
	for p < len(b) && b[p].Phone < e.Phone {
		p++
	}
	b = append(b, Entry{})
	copy(b[p+1:], b[p:])
	b[p] = e
	d.buckets[i] = b
	d.live++
}

// Search returns the phone numbers registered to name in ascending order, or
// nil if there are none.
func (d *Directory) Search(name string) []string {
	var phones []string
	for _, e := range d.buckets[hash.Name(name, len(d.buckets))] {
		if e.Name == name {
			phones = append(phones, e.Phone)
		}
	}
	return phones
}

// Rehash grows the table to the first prime >= 2*Capacity()+1 and reinserts
// all entries.
func (d *Directory) Rehash() {
	src := d.buckets
	d.buckets = make([][]Entry, hash.Grow(len(src)))
	d.live = 0
	for _, b := range src {
		for _, e := range b {
			d.Insert(e)
		}
	}
	d.log.V(1).Info("rehash", "from", len(src), "to", len(d.buckets), "entries", d.live)
}

// Clear removes all entries and resets the capacity to hash.MinCapacity.
func (d *Directory) Clear() {
	d.buckets = make([][]Entry, hash.MinCapacity)
	d.live = 0
}

// All returns an iterator over all entries, in bucket order. The directory
// must not be modified while iterating.
func (d *Directory) All() func(yield func(Entry) bool) {
	return func(yield func(Entry) bool) {
		for _, b := range d.buckets {
			for _, e := range b {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Capacity returns the number of buckets.
func (d *Directory) Capacity() int { return len(d.buckets) }

// Len returns the number of entries.
func (d *Directory) Len() int { return d.live }

// Load returns the average chain length.
func (d *Directory) Load() float64 { return float64(d.live) / float64(len(d.buckets)) }

// String returns the capacity followed by the length of each bucket,
// space separated.
func (d *Directory) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(d.buckets)))
	for _, b := range d.buckets {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(len(b)))
	}
	return sb.String()
}
