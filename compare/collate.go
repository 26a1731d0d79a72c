package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings according to the collation rules of a language.
//
// A Collator is not safe for concurrent use.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// Collation creates a locale-aware string comparer for tag. Options are
// passed through to x/text/collate, e.g. collate.IgnoreCase or
// collate.Numeric.
func Collation(tag language.Tag, opts ...collate.Option) *Collator {
	return &Collator{
		tag: tag,
		c:   collate.New(tag, opts...),
	}
}

// CollationFor parses a BCP 47 language tag and creates a Collator for it.
func CollationFor(bcp47 string, opts ...collate.Option) (*Collator, error) {
	tag, err := language.Parse(bcp47)
	if err != nil {
		return nil, err
	}
	return Collation(tag, opts...), nil
}

// Compare compares two strings by collation order.
func (col *Collator) Compare(a, b string) int {
	return col.c.CompareString(a, b)
}

// Language returns the language tag the collator was created for.
func (col *Collator) Language() language.Tag {
	return col.tag
}
