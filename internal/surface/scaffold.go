package surface

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scaffold is the YAML form of a declaratively annotated surface tree:
//
//	layout: vsplit
//	name: Main
//	ratio: 0.3
//	children:
//	  - name: Files
//	    text: "files pane"
//	  - layout: tabbing
//	    active: 1
//	    children:
//	      - {name: Log, ref: 3}
//	      - {name: Shell, ref: 4}
//
// Every key except children becomes a node attribute; text becomes the node
// markup.
type Scaffold struct {
	Layout      string     `yaml:"layout,omitempty"`
	Name        string     `yaml:"name,omitempty"`
	Orientation string     `yaml:"orientation,omitempty"`
	Ratio       *float64   `yaml:"ratio,omitempty"`
	Active      *int       `yaml:"active,omitempty"`
	Ref         *int       `yaml:"ref,omitempty"`
	Text        string     `yaml:"text,omitempty"`
	Children    []Scaffold `yaml:"children,omitempty"`
}

// Parse decodes a YAML scaffold into a surface tree rooted at a new node of
// doc. The returned node is mounted into doc's body so that derive can
// replace it in place.
func Parse(doc *Document, r io.Reader) (*Node, error) {
	var s Scaffold
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding surface scaffold: %w", err)
	}
	n := s.Build(doc)
	doc.Body().AppendChild(n)
	return n, nil
}

// ParseFile is Parse on the contents of path.
func ParseFile(doc *Document, path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(doc, f)
}

// Build creates the node tree described by s.
func (s Scaffold) Build(doc *Document) *Node {
	n := doc.CreateText("section", s.Text)
	if s.Layout != "" {
		n.SetAttr("layout", s.Layout)
	}
	if s.Name != "" {
		n.SetAttr("name", s.Name)
	}
	if s.Orientation != "" {
		n.SetAttr("orientation", s.Orientation)
	}
	if s.Ratio != nil {
		n.SetAttr("ratio", strconv.FormatFloat(*s.Ratio, 'f', -1, 64))
	}
	if s.Active != nil {
		n.SetAttr("active", strconv.Itoa(*s.Active))
	}
	if s.Ref != nil {
		n.SetAttr("ref", strconv.Itoa(*s.Ref))
	}
	for _, c := range s.Children {
		n.AppendChild(c.Build(doc))
	}
	return n
}
