package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const usageLine = "usage: flights [-h] --from <city> --to <city> [<city> ...] [--json]"

var errMissingArgs = errors.New("missing arguments")

type options struct {
	departure    string
	destinations []string
	json         bool
}

type cityList []string

func (c *cityList) String() string {
	return strings.Join(*c, ", ")
}

func (c *cityList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *options, *cityList) {
	opts := &options{}
	to := &cityList{}

	fs := flag.NewFlagSet("flights", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.departure, "from", "", "specifies departure `<city>`.")
	fs.Var(to, "to", "specifies list of destination cities; further `<city>` values may follow.")
	fs.BoolVar(&opts.json, "json", false, "print the report as JSON.")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usageLine)
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}
	return fs, opts, to
}

// parseArgs parses the command line. Bare words directly after a --to value
// extend the destination list, so "--to Paris Berlin" names two cities.
func parseArgs(args []string, output io.Writer) (*options, error) {
	fs, opts, to := newFlagSet(output)

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}

		consumed := args[:len(args)-len(rest)]
		if !continuesTo(consumed) {
			err := fmt.Errorf("unexpected argument %q", rest[0])
			fmt.Fprintln(output, err)
			fs.Usage()
			return nil, err
		}
		for len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			*to = append(*to, rest[0])
			rest = rest[1:]
		}
		if len(rest) > 0 && rest[0] == "--" {
			rest = rest[1:]
		}
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		seen[f.Name] = true
	})

	var missing []string
	if !seen["from"] {
		missing = append(missing, "--from")
	}
	if len(*to) == 0 {
		missing = append(missing, "--to")
	}
	if len(missing) > 0 {
		fmt.Fprintf(output, "the following arguments are required: %s\n", strings.Join(missing, ", "))
		fs.Usage()
		return nil, errMissingArgs
	}

	opts.destinations = *to
	return opts, nil
}

// continuesTo reports whether the last flag in consumed is --to
func continuesTo(consumed []string) bool {
	for i := len(consumed) - 1; i >= 0; i-- {
		tok := consumed[i]
		if !strings.HasPrefix(tok, "-") {
			continue
		}
		name := strings.TrimLeft(tok, "-")
		return name == "to" || strings.HasPrefix(name, "to=")
	}
	return false
}
