// Package main provides the CLI entry point for golatex.
//
// Usage:
//
//	golatex dump file.tex              # print the syntax tree
//	golatex check file.tex dir/       # report parser recoveries
//	golatex check --watch dir/        # keep checking on change
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boergens/golatex"
	"github.com/boergens/golatex/syntax"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dump", "d":
		if err := runDump(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check", "c":
		clean, err := runCheck(os.Args[2:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if !clean {
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("golatex version " + golatex.Version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`golatex - a fault-tolerant LaTeX parser

Usage:
  golatex dump <file.tex>
  golatex check [--watch] <file.tex|dir>...
  golatex help
  golatex version

Commands:
  dump, d       Parse a file and print its syntax tree
  check, c      Parse files and report parser recoveries
  help          Show this help message
  version       Show version information

Options:
  --watch       With check: keep watching the files and re-check on change`)
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("dump expects exactly one file")
	}

	doc, err := golatex.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Print(doc.Source.Root().Dump())
	return nil
}

func runCheck(args []string) (bool, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	watch := fs.Bool("watch", false, "keep watching the files and re-check on change")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() == 0 {
		return false, fmt.Errorf("check expects at least one file or directory")
	}

	ws := golatex.NewWorkspace().WatchFiles(*watch)
	defer ws.Close()
	for _, arg := range fs.Args() {
		info, err := os.Stat(arg)
		if err != nil {
			return false, err
		}
		if info.IsDir() {
			ws.AddDir(arg)
		} else {
			ws.AddFile(arg)
		}
	}

	diags, err := ws.Check()
	if err != nil {
		return false, err
	}
	for _, d := range diags {
		printDiagnostic(d.File, d.Diagnostic)
	}

	if *watch {
		err := ws.Watch(func(path string, diags []syntax.Diagnostic) {
			if len(diags) == 0 {
				fmt.Printf("%s: clean\n", path)
			}
			for _, d := range diags {
				printDiagnostic(path, d)
			}
		})
		return false, err
	}

	return len(diags) == 0, nil
}

func printDiagnostic(file string, d syntax.Diagnostic) {
	fmt.Printf("%s:%d:%d: %s\n", file, d.Position.Line+1, d.Position.Column+1, d.Message)
}
