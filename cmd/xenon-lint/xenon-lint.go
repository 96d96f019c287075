package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lestrrat-go/xenon"
	"github.com/lestrrat-go/xenon/xmltok"
)

type cmdopts struct {
	Check   bool `long:"check" description:"verify the parse/serialize round trip instead of printing"`
	Version bool `long:"version" description:"display the version of the library"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Print(`Usage : xenon-lint [options] XMLfiles ...
	Parse the XML files (stdin when none are given) and print them
	back with minimal namespace declarations
	--check   : verify the round trip instead of printing
	--version : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("xenon-lint: using xenon version %s\n", xenon.Version)
		return 0
	}

	if len(args) == 0 {
		return process(os.Stdin, "stdin", opts)
	}
	for _, f := range args {
		fh, err := os.Open(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		ret := process(fh, f, opts)
		fh.Close()
		if ret != 0 {
			return ret
		}
	}
	return 0
}

func process(in io.Reader, name string, opts cmdopts) int {
	buf, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	el, err := xmltok.Parse(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		return 1
	}

	if opts.Check {
		tokens, err := xenon.Serialize(el, xenon.Scope{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			return 1
		}
		reparsed, _, err := xenon.Build(tokens)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			return 1
		}
		if !xenon.ResolvedEqual(el, reparsed) {
			fmt.Fprintf(os.Stderr, "%s: round trip mismatch\n", name)
			return 1
		}
		fmt.Printf("%s: ok\n", name)
		return 0
	}

	if err := xmltok.Write(os.Stdout, el); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		return 1
	}
	fmt.Println()
	return 0
}
