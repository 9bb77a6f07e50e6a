// Package main is a small REPL demonstrating the pietable buffer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/textcraft/pietable"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	var buf *pietable.Buffer
	if opts.InitialFile != "" {
		data, err := os.ReadFile(opts.InitialFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", opts.InitialFile, err)
			return 1
		}
		buf = pietable.FromBytes(data, pietable.WithMaxHistory(opts.MaxHistory))
	} else {
		buf = pietable.New(pietable.WithMaxHistory(opts.MaxHistory))
	}

	return repl(buf, os.Stdin, os.Stdout)
}

type options struct {
	InitialFile string
	MaxHistory  int
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.InitialFile, "file", "", "Load the buffer's initial content from this file")
	flag.IntVar(&opts.MaxHistory, "max-history", 0, "Maximum undo records to retain (0 means unlimited)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pietable - piece-table buffer REPL\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pietable [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands (enter at the prompt):\n")
		fmt.Fprintf(os.Stderr, "  insert POS TEXT       insert TEXT at byte offset POS\n")
		fmt.Fprintf(os.Stderr, "  remove POS LEN        remove LEN bytes at POS\n")
		fmt.Fprintf(os.Stderr, "  replace POS LEN TEXT  replace LEN bytes at POS with TEXT\n")
		fmt.Fprintf(os.Stderr, "  undo / redo           step the history\n")
		fmt.Fprintf(os.Stderr, "  print                 print the document\n")
		fmt.Fprintf(os.Stderr, "  dump                  print a diagnostic JSON snapshot\n")
		fmt.Fprintf(os.Stderr, "  quit                  exit\n")
	}

	flag.Parse()
	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	return opts
}

func repl(buf *pietable.Buffer, in *os.File, out *os.File) int {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprint(w, "> ")
	w.Flush()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(w, "> ")
			w.Flush()
			continue
		}
		if line == "quit" {
			break
		}
		if err := dispatch(buf, w, line); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
		fmt.Fprint(w, "> ")
		w.Flush()
	}
	return 0
}

func dispatch(buf *pietable.Buffer, w *bufio.Writer, line string) error {
	fields := strings.SplitN(line, " ", 4)
	switch fields[0] {
	case "insert":
		if len(fields) < 3 {
			return fmt.Errorf("usage: insert POS TEXT")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		return buf.Insert(pos, []byte(strings.Join(fields[2:], " ")))

	case "remove":
		if len(fields) < 3 {
			return fmt.Errorf("usage: remove POS LEN")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		_, err = buf.Remove(pos, n)
		return err

	case "replace":
		if len(fields) < 4 {
			return fmt.Errorf("usage: replace POS LEN TEXT")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return err
		}
		_, err = buf.Replace(pos, n, []byte(fields[3]))
		return err

	case "undo":
		return buf.Undo()

	case "redo":
		return buf.Redo()

	case "print":
		text, err := buf.ToBytes()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", text)
		return nil

	case "dump":
		fmt.Fprintln(w, buf.Dump())
		return nil

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
