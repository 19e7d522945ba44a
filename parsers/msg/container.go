// container.go adapts the compound-document reader into the two-level
// entry tree the extractor walks: root children, group directories, and
// each group's direct stream children.

package msg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

// Entry is one node of the container tree. Directories expose Children;
// streams expose their content through Read. Entries only live for the
// duration of one parse pass.
type Entry struct {
	Name     string
	Dir      bool
	Children []*Entry

	file *mscfb.File
	data []byte // in-memory content when no backing stream exists
}

// Read returns the full content of a stream entry. Each call reads the
// stream once, front to back, so no handle stays open between entries.
func (e *Entry) Read() ([]byte, error) {
	if e.Dir {
		return nil, fmt.Errorf("%s is a directory", e.Name)
	}
	if e.file == nil {
		return e.data, nil
	}
	if e.file.Size <= 0 {
		return nil, nil
	}
	buf := make([]byte, int(e.file.Size))
	n, err := e.file.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading stream %s: %w", e.Name, err)
	}
	return buf[:n], nil
}

// openContainer parses the compound document in data and returns the root
// entries in storage order. Only the two levels the .msg property layout
// uses are linked up: root entries and the direct children of root-level
// directories.
func openContainer(data []byte) ([]*Entry, error) {
	if len(data) < len(cfbSignature) || !bytes.Equal(data[:len(cfbSignature)], cfbSignature) {
		return nil, ErrNotCompoundFile
	}
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening compound document: %w", err)
	}

	var files []*mscfb.File
	for f, err := doc.Next(); err == nil; f, err = doc.Next() {
		files = append(files, f)
	}

	// An entry is a directory exactly when some other entry names it as
	// its parent. Empty storages end up classified as streams, which is
	// harmless: with no children they can contribute nothing either way.
	isDir := map[string]bool{}
	for _, f := range files {
		if len(f.Path) == 1 {
			isDir[f.Path[0]] = true
		}
	}

	var root []*Entry
	dirs := map[string]*Entry{}
	for _, f := range files {
		e := &Entry{
			Name: f.Name,
			Dir:  isDir[f.Name] && len(f.Path) == 0,
			file: f,
		}
		switch len(f.Path) {
		case 0:
			root = append(root, e)
			if e.Dir {
				dirs[e.Name] = e
			}
		case 1:
			if parent, ok := dirs[f.Path[0]]; ok {
				parent.Children = append(parent.Children, e)
			}
		}
	}
	return root, nil
}
