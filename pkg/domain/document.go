package domain

// DocumentKind distinguishes localization documents from tree documents.
type DocumentKind string

const (
	// DocumentPairs is a flat key -> text document used for localization.
	DocumentPairs DocumentKind = "pairs"
	// DocumentTree is a conversation tree definition.
	DocumentTree DocumentKind = "tree"
)

// DocumentRef identifies a document in a source.
type DocumentRef struct {
	Kind DocumentKind
	Name string
}

// Attr is a single named attribute of an Element.
type Attr struct {
	Name  string
	Value string
}

// Element is one entry of a Document: a tag, its attributes in declaration
// order and its body text.
type Element struct {
	Tag   string
	Attrs []Attr
	Body  string
}

// Attr returns the value of the named attribute and whether it was present.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element identifier: the `id` attribute when present,
// the tag name otherwise.
func (e Element) ID() string {
	if id, ok := e.Attr("id"); ok && id != "" {
		return id
	}
	return e.Tag
}

// Document is the format-neutral representation of a pairs or tree file.
type Document struct {
	Name     string
	Elements []Element
}
