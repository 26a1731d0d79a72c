package visual

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for the different kinds of blocks.
type Palette struct {
	Root, Inner, Leaf *color.Color
}

// DefaultPalette colors the root red, inner blocks blue and leaves green.
func DefaultPalette() *Palette {
	return &Palette{
		Root:  color.New(color.FgRed, color.Bold),
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgGreen),
	}
}

// ConsoleConfig configures console output.
type ConsoleConfig struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // context for character width, defaults to uax11.LatinContext
	Palette   *Palette       // defaults to DefaultPalette()
}

var setupGraphemes sync.Once

// Console prints one line per block, indented by depth, with the block's
// entry count right-aligned at the configured line width. A nil config is
// derived from the terminal, see ConfigFromTerminal.
func Console[E any](t Blocker[E], w io.Writer, label Label[E], config *ConsoleConfig) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	var err error
	t.Blocks(func(b btree.BlockInfo[E]) bool {
		indent := strings.Repeat("  ", b.Depth-1)
		text := "[" + label.join(b.Entries, " ") + "]"
		count := fmt.Sprintf("#%d", len(b.Entries))
		width := displayWidth(indent+text, ctx)
		gap := 1
		if pad := config.LineWidth - width - len(count); pad > gap {
			gap = pad
		}
		if _, err = io.WriteString(w, indent); err != nil {
			return false
		}
		if _, err = palette.pick(b.Leaf, b.Parent < 0).Fprint(w, text); err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", gap), count)
		return err == nil
	})
	return err
}

// displayWidth returns the number of fixed-width positions s occupies.
// ASCII runs count one position per byte; uax11 over-measures some ASCII
// punctuation and digits, so only non-ASCII runs are measured with ctx.
func displayWidth(s string, ctx *uax11.Context) int {
	width, start := 0, -1
	for i, r := range s {
		if r < utf8.RuneSelf {
			if start >= 0 {
				width += uax11.StringWidth(grapheme.StringFromString(s[start:i]), ctx)
				start = -1
			}
			width++
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		width += uax11.StringWidth(grapheme.StringFromString(s[start:]), ctx)
	}
	return width
}

func (p *Palette) pick(isleaf bool, isroot bool) *color.Color {
	var c *color.Color
	switch {
	case isroot:
		c = p.Root
	case isleaf:
		c = p.Leaf
	default:
		c = p.Inner
	}
	if c == nil {
		c = color.New(color.Reset)
	}
	return c
}

// ConfigFromTerminal checks whether stdin is a terminal, and if so reads the
// terminal's width to set the line width.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: 65}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 20:
				config.LineWidth = w
			default:
				config.LineWidth = 20
			}
		}
	}
	T().P("visual", "console").Debugf("setting line width to %d en", config.LineWidth)
	return config
}
