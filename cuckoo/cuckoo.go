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

// Package cuckoo implements a directory mapping phone numbers to names with
// cuckoo hashing.
//
// Entries live in one of two tables of equal, prime size. An entry for phone
// number p can only be found at hash.Mod(hash.Phone(p), M) in the first table
// or at hash.Mult(hash.Phone(p), M) in the second, so lookups probe at most two
// slots. Inserting into an occupied slot evicts the occupant to its slot in the
// other table, and so on until an empty slot is found. If more than M+1
// placements are needed, both tables are grown and the insertion is retried.
//
// Insertion does not check for an existing entry with the same phone number:
// inserting a phone number twice stores two entries, only one of which can be
// found by Search.
//
// Termination is not guaranteed for keys whose images collide at every size.
// The simplest such set is three copies of the same phone number: they share
// both of their slots at any capacity, so inserting the third copy grows the
// tables without end.
package cuckoo

import (
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/db47h/phonebook/hash"
)

// NotFound is returned by Lookup for unknown phone numbers.
const NotFound = "not found"

// Entry is a phone number to name mapping.
type Entry struct {
	Phone string
	Name  string
}

// Directory is a phone number to name cuckoo hash table. The zero value is
// not usable, use New. A Directory is not safe for concurrent use.
type Directory struct {
	// both tables always have the same length.
	tables   [2][]*Entry
	live     int
	rehashes int
	log      logr.Logger
}

// New returns a new Directory configured with the given options.
func New(opts ...Option) *Directory {
	o := getOpts(opts)
	d := &Directory{log: o.logger.WithName("cuckoo")}
	d.alloc(o.capacity)
	return d
}

func (d *Directory) alloc(sz int) {
	d.tables[0] = make([]*Entry, sz)
	d.tables[1] = make([]*Entry, sz)
	d.live = 0
}

// slot returns the position of key in table t.
func (d *Directory) slot(t int, key uint64) int {
	if t == 0 {
		return hash.Mod(key, d.Capacity())
	}
	return hash.Mult(key, d.Capacity())
}

// Insert adds e to the directory, growing it as needed.
func (d *Directory) Insert(e Entry) {
	it := &e
	for {
		if it = d.place(it); it == nil {
			return
		}
		d.log.V(2).Info("displacement limit reached", "capacity", d.Capacity(), "homeless", it.Phone)
		d.Rehash()
	}
}

// place runs the eviction chain for it for at most Capacity()+1 steps. It
// returns nil on success, or the entry left without a slot.
func (d *Directory) place(it *Entry) *Entry {
	t := 0
	for range d.Capacity() + 1 {
		s := d.slot(t, hash.Phone(it.Phone))
		tbl := d.tables[t]
		it, tbl[s] = tbl[s], it
		if it == nil {
			d.live++
			return nil
		}
		t = 1 - t
	}
	return it
}

// Search returns the name registered for phone and true, or "" and false if
// phone is not found.
func (d *Directory) Search(phone string) (string, bool) {
	key := hash.Phone(phone)
	for t := range d.tables {
		if it := d.tables[t][d.slot(t, key)]; it != nil && it.Phone == phone {
			return it.Name, true
		}
	}
	return "", false
}

// Lookup returns the name registered for phone, or NotFound.
func (d *Directory) Lookup(phone string) string {
	if name, ok := d.Search(phone); ok {
		return name
	}
	return NotFound
}

// Rehash grows both tables to the first prime >= 2*Capacity()+1 and
// reinserts all entries. It may recursively trigger further rehashes.
func (d *Directory) Rehash() {
	src := d.tables
	from := d.Capacity()
	d.alloc(hash.Grow(from))
	d.rehashes++
	for _, tbl := range src {
		for _, it := range tbl {
			if it != nil {
				d.Insert(*it)
			}
		}
	}
	d.log.V(1).Info("rehash", "from", from, "to", d.Capacity(), "entries", d.live)
}

// Clear removes all entries and resets the capacity to hash.MinCapacity.
func (d *Directory) Clear() {
	d.alloc(hash.MinCapacity)
	d.rehashes = 0
}

// All returns an iterator over all stored entries, first table first. The
// directory must not be modified while iterating.
func (d *Directory) All() func(yield func(Entry) bool) {
	return func(yield func(Entry) bool) {
		for _, tbl := range d.tables {
			for _, it := range tbl {
				if it != nil && !yield(*it) {
					return
				}
			}
		}
	}
}

// Capacity returns the number of slots in each table.
func (d *Directory) Capacity() int { return len(d.tables[0]) }

// Len returns the number of occupied slots.
func (d *Directory) Len() int { return d.live }

// Load returns the ratio of occupied slots to the total number of slots.
func (d *Directory) Load() float64 { return float64(d.live) / float64(2*d.Capacity()) }

// Rehashes returns the number of times the tables were grown since the
// directory was created or last cleared.
func (d *Directory) Rehashes() int { return d.rehashes }

// String returns the capacity followed by 1 for each occupied slot and 0 for
// each empty one, first table first, space separated.
func (d *Directory) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(d.Capacity()))
	for _, tbl := range d.tables {
		for _, it := range tbl {
			if it != nil {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		}
	}
	return sb.String()
}
