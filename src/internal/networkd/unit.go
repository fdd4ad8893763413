package networkd

import (
	"bufio"
	"bytes"
	"io"
)

// Section is one [Name] block of a unit file.
type Section struct {
	Name    string
	Entries []Entry
}

// Entry is a single "Key = Value" line.
type Entry struct {
	Key   string
	Value string
}

// Add appends a key to the section.
func (s *Section) Add(key, value string) {
	s.Entries = append(s.Entries, Entry{Key: key, Value: value})
}

// Unit is an ordered systemd-networkd document.
type Unit struct {
	// Header lines are written as comments before the first section.
	Header   []string
	Sections []*Section
}

// AddSection appends an empty section and returns it for filling.
func (u *Unit) AddSection(name string) *Section {
	s := &Section{Name: name}
	u.Sections = append(u.Sections, s)
	return s
}

// WriteTo serializes the unit. Sections are separated by one blank line.
func (u *Unit) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	for _, line := range u.Header {
		if line == "" {
			cw.writeString("#\n")
		} else {
			cw.writeString("# " + line + "\n")
		}
	}
	if len(u.Header) > 0 {
		cw.writeString("\n")
	}

	for i, section := range u.Sections {
		if i > 0 {
			cw.writeString("\n")
		}
		cw.writeString("[" + section.Name + "]\n")
		for _, entry := range section.Entries {
			cw.writeString(entry.Key + " = " + entry.Value + "\n")
		}
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// Bytes returns the serialized unit.
func (u *Unit) Bytes() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_, _ = u.WriteTo(&buf)
	return buf.Bytes()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) writeString(s string) {
	if c.err != nil {
		return
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
}
