// Package emitter serialises a volgraph.Graph to the volfile text
// format (spec.md §6) and writes it to disk atomically.
package emitter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// Render returns the volfile text for g: one stanza per node, in
// reverse-topological (children-before-parents) order. Each stanza is
//
//	volume <name>
//	    type <type>
//	    option <key> <value>   (one per option, keys sorted for a
//	                             deterministic byte stream)
//	    subvolumes <child1> <child2> ...   (omitted when childless)
//	end-volume
//
// An empty graph renders to an empty string.
func Render(g *volgraph.Graph) string {
	var buf []byte
	for _, n := range g.PostOrder() {
		buf = appendStanza(buf, n)
	}
	return string(buf)
}

func appendStanza(buf []byte, n *volgraph.Node) []byte {
	buf = append(buf, "volume "...)
	buf = append(buf, n.Name...)
	buf = append(buf, '\n')

	buf = append(buf, "    type "...)
	buf = append(buf, n.Type...)
	buf = append(buf, '\n')

	keys := make([]string, 0, len(n.Options))
	for k := range n.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf = append(buf, "    option "...)
		buf = append(buf, k...)
		buf = append(buf, ' ')
		buf = append(buf, n.Options[k]...)
		buf = append(buf, '\n')
	}

	if len(n.Children) > 0 {
		buf = append(buf, "    subvolumes"...)
		for _, c := range n.Children {
			buf = append(buf, ' ')
			buf = append(buf, c.Name...)
		}
		buf = append(buf, '\n')
	}

	buf = append(buf, "end-volume\n"...)
	return buf
}

// Write renders g and writes it to path atomically: the text is
// written to path+".tmp" (truncating any stale leftover), flushed, and
// renamed over path. On any failure the temp file is removed and path
// is left untouched — a failed Write never leaves a partially written
// volfile in place (spec.md §4.8, §5 "resource discipline").
//
// Write creates path's parent directory if it does not already exist.
func Write(g *volgraph.Graph, path string) (err error) {
	logger := log.WithComponent("emitter")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write %s: create temp file: %w", path, err)
	}
	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
		if err != nil {
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	for _, n := range g.PostOrder() {
		if _, werr := w.Write(appendStanza(nil, n)); werr != nil {
			err = fmt.Errorf("write %s: %w", path, werr)
			return err
		}
	}
	if ferr := w.Flush(); ferr != nil {
		err = fmt.Errorf("write %s: flush: %w", path, ferr)
		return err
	}
	if ferr := f.Sync(); ferr != nil {
		err = fmt.Errorf("write %s: sync: %w", path, ferr)
		return err
	}
	closed = true
	if ferr := f.Close(); ferr != nil {
		err = fmt.Errorf("write %s: close: %w", path, ferr)
		return err
	}

	if ferr := os.Rename(tmp, path); ferr != nil {
		err = fmt.Errorf("write %s: rename: %w", path, ferr)
		return err
	}

	logger.Debug().Str("path", path).Int("nodes", g.Count()).Msg("volfile written")
	return nil
}
