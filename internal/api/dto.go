package api

import (
	"fmt"

	"github.com/calctools/tivar/internal/tokens"
	"github.com/calctools/tivar/pkg/ti83f"
)

// FileDoc is the JSON rendering of a decoded container.
type FileDoc struct {
	ID      string     `json:"id"`
	Object  string     `json:"object"`
	Format  string     `json:"format"`
	Comment string     `json:"comment"`
	Entries []EntryDoc `json:"entries"`
}

// EntryDoc describes one variable entry.
type EntryDoc struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Kind     string   `json:"kind"`
	Version  uint8    `json:"version"`
	Archived bool     `json:"archived"`
	Value    ValueDoc `json:"value"`
}

// ValueDoc carries a per-kind rendering of the payload. Exactly the
// fields for the entry's kind are populated.
type ValueDoc struct {
	Real    string     `json:"real,omitempty"`
	Complex string     `json:"complex,omitempty"`
	List    []string   `json:"list,omitempty"`
	Rows    int        `json:"rows,omitempty"`
	Cols    int        `json:"cols,omitempty"`
	Matrix  [][]string `json:"matrix,omitempty"`
	Text    string     `json:"text,omitempty"`
	Program string     `json:"program,omitempty"`
	Size    int        `json:"size,omitempty"`
}

// ErrorDoc is the JSON error envelope.
type ErrorDoc struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// DocumentFile renders a decoded container under the given id.
func DocumentFile(id string, f *ti83f.File) FileDoc {
	doc := FileDoc{
		ID:      id,
		Object:  "calculator-file",
		Format:  f.Format.String(),
		Comment: f.Comment.String(),
		Entries: make([]EntryDoc, 0, len(f.Entries)),
	}
	for _, e := range f.Entries {
		doc.Entries = append(doc.Entries, documentEntry(e))
	}
	return doc
}

func documentEntry(e ti83f.Entry) EntryDoc {
	d := EntryDoc{
		Name:     e.Name.String(),
		Type:     e.Type.String(),
		Kind:     e.Value.Kind().String(),
		Version:  e.Version,
		Archived: e.Archived(),
	}
	switch e.Value.Kind() {
	case ti83f.KindReal:
		r, _ := e.Value.AsReal()
		d.Value.Real = r.String()
	case ti83f.KindComplex:
		c, _ := e.Value.AsComplex()
		d.Value.Complex = c.String()
	case ti83f.KindRealList:
		rs, _ := e.Value.AsRealList()
		d.Value.List = make([]string, len(rs))
		for i, r := range rs {
			d.Value.List[i] = r.String()
		}
	case ti83f.KindComplexList:
		cs, _ := e.Value.AsComplexList()
		d.Value.List = make([]string, len(cs))
		for i, c := range cs {
			d.Value.List[i] = c.String()
		}
	case ti83f.KindMatrix:
		m, _ := e.Value.AsMatrix()
		d.Value.Rows, d.Value.Cols = m.Rows, m.Cols
		d.Value.Matrix = make([][]string, m.Rows)
		for r := 0; r < m.Rows; r++ {
			row := make([]string, m.Cols)
			for c := 0; c < m.Cols; c++ {
				row[c] = m.At(r, c).String()
			}
			d.Value.Matrix[r] = row
		}
	case ti83f.KindString:
		b, _ := e.Value.AsStringBytes()
		d.Value.Text = tokens.Detokenize(b)
		d.Value.Size = len(b)
	case ti83f.KindProgram:
		b, _ := e.Value.AsProgramBytes()
		d.Value.Program = tokens.Detokenize(b)
		d.Value.Size = len(b)
	default:
		b, _ := e.Value.AsOpaqueBytes()
		d.Value.Size = len(b)
	}
	return d
}

// Summary is a one-line description used by logs.
func (d EntryDoc) Summary() string {
	return fmt.Sprintf("%s (%s, %d bytes)", d.Name, d.Type, d.Value.Size)
}
