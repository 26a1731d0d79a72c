package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/ordtree/keyfile"
	"github.com/npillmayer/ordtree/visual"
)

type entry = btree.Pair[string, string]

// Shell reads commands line by line and applies them to a map.
type Shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	m       *ordtree.Map[string, string]
	console *visual.ConsoleConfig
	errc    *color.Color
	promptc *color.Color
}

// NewShell creates a shell reading from s and writing to out.
func NewShell(s *bufio.Scanner, out io.Writer, m *ordtree.Map[string, string]) *Shell {
	return &Shell{
		scanner: s,
		out:     out,
		m:       m,
		console: visual.ConfigFromTerminal(),
		errc:    color.New(color.FgRed),
		promptc: color.New(color.FgCyan),
	}
}

// Start runs the shell until EXIT or end of input.
func (sh *Shell) Start() {
	sh.printHelp()
	sh.printPrompt()
	for sh.scanner.Scan() {
		if !sh.processInput(sh.scanner.Text()) {
			return
		}
		sh.printPrompt()
	}
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, `
B-Tree shell

Available commands:
  ADD <key> <val>   Insert a new key, fails for existing keys
  PUT <key> <val>   Insert or replace a key
  DEL <key>         Remove a key
  GET <key>         Retrieve the value for a key
  HAS <key>         Check for a key
  LIST [<lo> <hi>]  List entries, optionally for keys in [lo, hi)
  MIN | MAX         Show the smallest or largest entry
  SHOW              Print the tree's blocks
  DOT | HTML        Print the tree in Graphviz DOT or HTML format
  LOAD <file>       Load 'key = value' lines from a file
  CLEAR             Remove all keys
  STATS             Show size, height and degree
  CHECK             Validate the tree's invariants
  HELP              Print this help
  EXIT              Terminate this session`)
}

func (sh *Shell) printPrompt() {
	sh.promptc.Fprint(sh.out, "> ")
}

func (sh *Shell) fail(format string, args ...interface{}) {
	sh.errc.Fprintf(sh.out, format+"\n", args...)
}

// processInput executes one command line. It returns false if the session
// should end.
func (sh *Shell) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	default:
		sh.fail("Unknown command \"%s\"", command)
	case "add":
		sh.processAddCommand(args)
	case "put":
		sh.processPutCommand(args)
	case "del":
		sh.processDeleteCommand(args)
	case "get":
		sh.processGetCommand(args)
	case "has":
		if sh.usage(args, 1, "HAS <key>") {
			fmt.Fprintln(sh.out, sh.m.Contains(args[0]))
		}
	case "list":
		sh.processListCommand(args)
	case "min", "max":
		sh.processMinMaxCommand(command)
	case "show":
		sh.show()
	case "dot":
		if err := visual.Dot[entry](sh.m.Tree(), sh.out, keyLabel); err != nil {
			sh.fail("%v", err)
		}
	case "html":
		if err := visual.HTML[entry](sh.m.Tree(), sh.out, keyLabel); err != nil {
			sh.fail("%v", err)
			break
		}
		fmt.Fprintln(sh.out)
	case "load":
		sh.processLoadCommand(args)
	case "clear":
		sh.m.Clear()
		fmt.Fprintln(sh.out, "Cleared.")
	case "stats":
		fmt.Fprintf(sh.out, "keys=%d height=%d degree=%d\n", sh.m.Len(), sh.m.Height(), sh.m.Degree())
	case "check":
		if err := sh.m.Check(); err != nil {
			sh.fail("%v", err)
		} else {
			fmt.Fprintln(sh.out, "OK")
		}
	case "help":
		sh.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (sh *Shell) usage(args []string, n int, usage string) bool {
	if len(args) != n {
		sh.fail("Usage: %s", usage)
		return false
	}
	return true
}

func (sh *Shell) processAddCommand(args []string) {
	if !sh.usage(args, 2, "ADD <key> <value>") {
		return
	}
	if err := sh.m.Add(args[0], args[1]); err != nil {
		sh.fail("%v", err)
		return
	}
	sh.show()
}

func (sh *Shell) processPutCommand(args []string) {
	if !sh.usage(args, 2, "PUT <key> <value>") {
		return
	}
	if old, replaced := sh.m.Put(args[0], args[1]); replaced {
		fmt.Fprintf(sh.out, "Replaced %q.\n", old)
		return
	}
	sh.show()
}

func (sh *Shell) processDeleteCommand(args []string) {
	if !sh.usage(args, 1, "DEL <key>") {
		return
	}
	if _, ok := sh.m.Remove(args[0]); !ok {
		sh.fail("Key not found.")
		return
	}
	sh.show()
}

func (sh *Shell) processGetCommand(args []string) {
	if !sh.usage(args, 1, "GET <key>") {
		return
	}
	val, ok := sh.m.Get(args[0])
	if !ok {
		sh.fail("Key not found.")
		return
	}
	fmt.Fprintln(sh.out, val)
}

func (sh *Shell) processListCommand(args []string) {
	list := func(k, v string) bool {
		fmt.Fprintf(sh.out, "%s = %s\n", k, v)
		return true
	}
	var err error
	switch len(args) {
	case 0:
		err = sh.m.Ascend(list)
	case 2:
		err = sh.m.AscendRange(args[0], args[1], list)
	default:
		sh.fail("Usage: LIST [<lo> <hi>]")
		return
	}
	if err != nil {
		sh.fail("%v", err)
	}
}

func (sh *Shell) processMinMaxCommand(command string) {
	var p entry
	var ok bool
	if command == "min" {
		p, ok = sh.m.Tree().Min()
	} else {
		p, ok = sh.m.Tree().Max()
	}
	if !ok {
		sh.fail("Tree is empty.")
		return
	}
	fmt.Fprintf(sh.out, "%s = %s\n", p.Key(), p.Value())
}

func (sh *Shell) processLoadCommand(args []string) {
	if !sh.usage(args, 1, "LOAD <file>") {
		return
	}
	n, err := keyfile.LoadMap(context.Background(), args[0], "=", sh.m)
	if err != nil {
		sh.fail("%v", err)
	}
	fmt.Fprintf(sh.out, "Loaded %d new keys.\n", n)
	sh.show()
}

func (sh *Shell) show() {
	if err := visual.Console[entry](sh.m.Tree(), sh.out, keyLabel, sh.console); err != nil {
		sh.fail("%v", err)
	}
}

func keyLabel(p entry) string {
	return p.Key()
}
