// Command phonebook runs directory commands read from standard input or a
// file and prints their results to standard output.
//
// See phonebook.Serve for the command syntax.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/db47h/phonebook"
)

func usage() {
	log.Printf("Usage: phonebook [-v level] [-in file]\n")
	flag.PrintDefaults()
}

func exitOnErr(logger logr.Logger, err error, msg string) {
	if err != nil {
		logger.Error(err, msg)
		os.Exit(1)
	}
}

// getLogger returns a stdr.Logger that implements the logr.Logger interface
// and sets the verbosity of the returned logger.
// set v to 0 for info level messages,
// 1 for debug messages and 2 for trace level message.
// any other verbosity level will default to 0.
func getLogger(v int) logr.Logger {
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	if v > 2 || v < 0 {
		v = 0
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)
	return logger
}

func main() {
	var in = flag.String("in", "", "read commands from file instead of standard input")
	var verbose = flag.Int("v", 0, "Verbosity level, default to -v 0 for info level messages, -v 1 for debug messages, and -v 2 for trace level message.")
	var showHelp = flag.Bool("h", false, "Show help message")

	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *showHelp {
		usage()
		os.Exit(0)
	}

	logger := getLogger(*verbose)

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		exitOnErr(logger, err, "failed to open command file")
		defer f.Close()
		r = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	book := phonebook.New(phonebook.Logger(logger))
	err := phonebook.Serve(ctx, book, r, os.Stdout)
	exitOnErr(logger, err, "phonebook failed")
}
