package hash

import (
	"errors"
	"fmt"
)

// radix used by Name to fold bytes.
const radix = 255

// ErrMalformedPhone is returned by ParsePhone for strings that do not follow
// the (AAA)EEE-LLLL layout.
var ErrMalformedPhone = errors.New("malformed phone number")

// Name folds name into a bucket index for a table of the given size using
// Horner's rule, reducing modulo size after every byte. The result is in the
// range [0, size).
//
// Since the reduction depends on size, a name will usually land in a
// different bucket after a table has been resized.
func Name(name string, size int) int {
	var acc int
	for i := 0; i < len(name); i++ {
		acc = Mod(uint64(acc)*radix+uint64(name[i]), size)
	}
	return acc
}

// Phone converts a phone number of the form (AAA)EEE-LLLL into the integer
// AAA*10_000_000 + EEE*10_000 + LLLL.
//
// No validation is performed: Phone folds the decimal digits of the string in
// order, so that (AAA) EEE-LLLL yields the same key, and any other input
// yields an unspecified key. Use ParsePhone to check user input.
func Phone(phone string) uint64 {
	var key uint64
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; '0' <= c && c <= '9' {
			key = key*10 + uint64(c-'0')
		}
	}
	return key
}

// ParsePhone validates phone and returns its key as computed by Phone. Both
// the compact (AAA)EEE-LLLL and the spaced (AAA) EEE-LLLL layouts are
// accepted.
func ParsePhone(phone string) (uint64, error) {
	s := phone
	if len(s) == 14 && s[5] == ' ' {
		s = s[:5] + s[6:]
	}
	if len(s) != 13 || s[0] != '(' || s[4] != ')' || s[8] != '-' {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPhone, phone)
	}
	for _, r := range [...][2]int{{1, 4}, {5, 8}, {9, 13}} {
		for i := r[0]; i < r[1]; i++ {
			if s[i] < '0' || s[i] > '9' {
				return 0, fmt.Errorf("%w: %q", ErrMalformedPhone, phone)
			}
		}
	}
	return Phone(s), nil
}
