package phonebook

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/phonebook/hash"
)

// MaxLineSize is the maximum length of a command line read by Serve.
const MaxLineSize = 16 << 20

// Serve reads commands from r, one per line, runs them against b and writes
// their output to w. It returns when r is exhausted, on the x command, or
// when ctx is done.
//
// Commands:
//
//	i NAME PHONE    register PHONE for NAME
//	l PHONE         print the owner of PHONE, or "not found"
//	s NAME          print the phone numbers of NAME, or "not found"
//	rh T            rehash directory T (0: by name, 1: by phone)
//	p T             dump directory T
//	r               reset both directories
//	x               quit
//
// Unknown or incomplete commands are skipped. A bare s searches the empty
// name. Phone numbers passed to i must have the form (AAA)EEE-LLLL. Lines
// longer than MaxLineSize bytes abort the session with an error.
func Serve(ctx context.Context, b *Book, r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	bw := bufio.NewWriter(w)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			bw.Flush()
			return err
		}
		quit, err := b.exec(bw, strings.Fields(s.Text()))
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if quit {
			break
		}
	}
	if err := s.Err(); err != nil {
		bw.Flush()
		return fmt.Errorf("read commands: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// exec runs a single command. Errors are only returned for failed writes.
func (b *Book) exec(w io.Writer, args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := args[0], args[1:]
	if n := arity(cmd); n < 0 || len(args) < n {
		b.log.V(1).Info("skipping command", "cmd", cmd, "args", args)
		return false, nil
	}
	switch cmd {
	case "i":
		if _, err := hash.ParsePhone(args[1]); err != nil {
			b.log.Error(err, "skipping registration", "name", args[0])
			return false, nil
		}
		b.Register(args[0], args[1])
	case "l":
		_, err = fmt.Fprintln(w, b.LookupPhone(args[0]))
	case "s":
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		phones := b.SearchName(name)
		if len(phones) == 0 {
			_, err = fmt.Fprintln(w, NotFound)
		} else {
			_, err = fmt.Fprintln(w, strings.Join(phones, " "))
		}
	case "rh", "p":
		t, perr := strconv.Atoi(args[0])
		if perr != nil {
			b.log.V(1).Info("skipping command", "cmd", cmd, "error", perr.Error())
			return false, nil
		}
		if cmd == "rh" {
			b.Rehash(Target(t))
		} else {
			_, err = fmt.Fprintln(w, b.Dump(Target(t)))
		}
	case "r":
		b.Reset()
	case "x":
		return true, nil
	}
	return false, err
}

// arity returns the number of arguments of cmd, or -1 for unknown commands.
func arity(cmd string) int {
	switch cmd {
	case "i":
		return 2
	case "l", "rh", "p":
		return 1
	case "s", "r", "x":
		return 0
	}
	return -1
}
