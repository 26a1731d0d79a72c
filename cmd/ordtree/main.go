/*
Command ordtree is an interactive shell for exploring B-trees.

It maintains an ordered map from strings to strings and prints the tree's
block structure after every mutation.

Usage:

	ordtree [-degree m] [-collate tag] [-load file] [-trace]

Keys are compared byte-wise unless -collate names a BCP 47 language tag.
-load fills the map from a key file with 'key = value' lines before the
shell starts.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/compare"
	"github.com/npillmayer/ordtree/keyfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	degree := flag.Int("degree", 3, "degree m of the B-tree (m >= 2)")
	collation := flag.String("collate", "", "BCP 47 language tag for collating keys")
	load := flag.String("load", "", "key file to load at start")
	trace := flag.Bool("trace", false, "trace structural changes of the tree")
	flag.Parse()
	//
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if *trace {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	m, err := newMap(*degree, *collation)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *load != "" {
		n, err := keyfile.LoadMap(context.Background(), *load, "=", m)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("loaded %d keys from %s\n", n, *load)
	}
	shell := NewShell(bufio.NewScanner(os.Stdin), os.Stdout, m)
	shell.Start()
}

func newMap(degree int, collation string) (*ordtree.Map[string, string], error) {
	if collation == "" {
		return ordtree.NewOrderedMap[string, string](degree)
	}
	c, err := compare.CollationFor(collation)
	if err != nil {
		return nil, err
	}
	return ordtree.NewMap[string, string](degree, c)
}
