package keyfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtree"
)

// batchSize is the number of lines published at once.
const batchSize = 64

// line is a significant line of a key file together with its 1-based number.
type line struct {
	no   int
	text string
}

// loadDone is published after the last batch.
type loadDone struct {
	err error
}

// LoadSet adds every value listed in file name to set. It returns the
// number of values which have not been in the set before.
func LoadSet(ctx context.Context, name string, set *ordtree.Set[string]) (int, error) {
	return load(ctx, name, func(l line) (bool, error) {
		return set.Add(l.text), nil
	})
}

// LoadMap stores every key/value pair listed in file name into m. Keys and
// values are divided by the first occurrence of sep and trimmed. Later lines
// override earlier ones. LoadMap returns the number of keys which have not
// been in the map before.
//
// A line without sep, or with an empty key, stops loading with ErrSyntax;
// entries of preceding lines are kept.
func LoadMap(ctx context.Context, name string, sep string, m *ordtree.Map[string, string]) (int, error) {
	if sep == "" {
		return 0, fmt.Errorf("%w: empty separator", ordtree.ErrInvalidConfig)
	}
	return load(ctx, name, func(l line) (bool, error) {
		k, v, ok := strings.Cut(l.text, sep)
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return false, fmt.Errorf("%w: %s:%d: expected key%svalue", ErrSyntax, name, l.no, sep)
		}
		_, replaced := m.Put(k, strings.TrimSpace(v))
		return !replaced, nil
	})
}

func load(ctx context.Context, name string, insert func(line) (bool, error)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	file, err := openFile(name)
	if err != nil {
		return 0, err
	}
	cast := caster.New(nil)
	defer cast.Close() // unblocks the reader if we stop early
	ch, ok := cast.Sub(ctx, 4)
	if !ok {
		file.Close()
		return 0, errors.New("keyfile: cannot subscribe to line reader")
	}
	go readLines(file, cast)
	added := 0
	for {
		select {
		case <-ctx.Done():
			return added, ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return added, ctx.Err()
			}
			switch m := msg.(type) {
			case []line:
				for _, l := range m {
					isNew, err := insert(l)
					if err != nil {
						return added, err
					}
					if isNew {
						added++
					}
				}
			case loadDone:
				tracer().Debugf("keyfile: loaded %s, %d new entries", name, added)
				return added, m.err
			}
		}
	}
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("keyfile: %s is not a regular file", name)
	}
	return os.Open(name)
}

// readLines publishes the significant lines of file in batches, followed by
// a loadDone message. It stops as soon as the caster is closed.
func readLines(file *os.File, cast *caster.Caster) {
	defer file.Close()
	scanner := bufio.NewScanner(file)
	batch := make([]line, 0, batchSize)
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		batch = append(batch, line{no: no, text: text})
		if len(batch) == batchSize {
			if !cast.Pub(batch) {
				return
			}
			batch = make([]line, 0, batchSize)
		}
	}
	if len(batch) > 0 && !cast.Pub(batch) {
		return
	}
	var err error
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("keyfile: reading %s: %w", file.Name(), err)
	}
	cast.Pub(loadDone{err: err})
}
