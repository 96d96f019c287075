package xenon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lestrrat-go/strcursor"
)

// PathEntry is one navigation step: among the children of the current
// element whose resolved name equals Name, select the Index-th one in
// document order (zero-based).
type PathEntry struct {
	Name  EName
	Index int
}

// Path addresses an element relative to a root. The empty Path
// addresses the root itself. A Path captured against one tree always
// re-navigates to the same node within that tree; against a
// structurally different tree navigation may fail.
type Path []PathEntry

// String renders the path as /{uri}local[n]/... so it can be logged
// and parsed back. The empty path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, entry := range p {
		sb.WriteByte('/')
		sb.WriteString(entry.Name.String())
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(entry.Index))
		sb.WriteByte(']')
	}
	return sb.String()
}

// ParsePath parses the textual form produced by Path.String.
func ParsePath(s string) (Path, error) {
	if s == "/" {
		return Path{}, nil
	}
	cur := strcursor.NewRuneCursor(strings.NewReader(s))
	if cur.Done() {
		return nil, fmt.Errorf("path: empty input")
	}
	var path Path
	for !cur.Done() {
		if !cur.ConsumeString("/") {
			return nil, fmt.Errorf("path %q: expected '/'", s)
		}
		entry, err := parsePathEntry(cur, s)
		if err != nil {
			return nil, err
		}
		path = append(path, entry)
	}
	return path, nil
}

func parsePathEntry(cur strcursor.Cursor, s string) (PathEntry, error) {
	var uri string
	if cur.ConsumeString("{") {
		u, ok := readUntil(cur, '}')
		if !ok {
			return PathEntry{}, fmt.Errorf("path %q: unterminated namespace URI", s)
		}
		uri = u
	}
	local, ok := readUntil(cur, '[')
	if !ok || local == "" {
		return PathEntry{}, fmt.Errorf("path %q: expected local name followed by index", s)
	}
	digits, ok := readUntil(cur, ']')
	if !ok {
		return PathEntry{}, fmt.Errorf("path %q: unterminated index", s)
	}
	index, err := strconv.Atoi(digits)
	if err != nil || index < 0 {
		return PathEntry{}, fmt.Errorf("path %q: invalid index %q", s, digits)
	}
	return PathEntry{Name: EName{URI: uri, Local: local}, Index: index}, nil
}

// readUntil accumulates runes up to stop, consuming stop as well, and
// returns the text before it. ok is false when the cursor runs out
// before stop is seen.
func readUntil(cur strcursor.Cursor, stop rune) (string, bool) {
	var sb strings.Builder
	for !cur.Done() {
		r := cur.Peek()
		if err := cur.Advance(1); err != nil {
			break
		}
		if r == stop {
			return sb.String(), true
		}
		sb.WriteRune(r)
	}
	return sb.String(), false
}

// Locate walks path from root and returns the addressed element. At
// each step the children whose resolved name matches the entry are
// counted in document order; running past the end of that list is
// ErrPathNotFound.
func Locate(root *Element, path Path) (*Element, error) {
	cur := root
	for i, entry := range path {
		var next *Element
		n := 0
		for _, child := range cur.children {
			el, ok := child.(*Element)
			if !ok || el.ResolvedName() != entry.Name {
				continue
			}
			if n == entry.Index {
				next = el
				break
			}
			n++
		}
		if next == nil {
			return nil, ErrPathNotFound{Path: path, Entry: i}
		}
		cur = next
	}
	return cur, nil
}

// PathTo returns the path that addresses target within the tree rooted
// at root. Identity matters: target must be the very node value
// reachable from root, not a structural copy, and the result is only
// meaningful against that same tree snapshot. Only elements are
// addressable; for any other node, or a node not in the tree, ok is
// false.
func PathTo(root *Element, target Node) (Path, bool) {
	if Node(root) == target {
		return Path{}, true
	}
	return pathTo(root, target, nil)
}

func pathTo(cur *Element, target Node, prefix Path) (Path, bool) {
	counts := make(map[EName]int)
	for _, child := range cur.children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		name := el.ResolvedName()
		index := counts[name]
		counts[name]++
		entry := append(append(Path(nil), prefix...), PathEntry{Name: name, Index: index})
		if Node(el) == target {
			return entry, true
		}
		if p, ok := pathTo(el, target, entry); ok {
			return p, true
		}
	}
	return nil, false
}
