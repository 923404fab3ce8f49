package compiler

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format is the concrete encoding of a document.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// bodyKey holds the element body in YAML documents.
const bodyKey = "text"

// Parser converts raw document bytes into a domain.Document.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Detect sniffs the encoding: XML when the first non-blank byte is '<', YAML otherwise.
func Detect(data []byte) Format {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return FormatXML
	}
	return FormatYAML
}

// Parse decodes a pairs or tree document. Any failure is a *domain.ParseError.
func (p *Parser) Parse(name string, data []byte) (*domain.Document, error) {
	parse := parseYAML
	if Detect(data) == FormatXML {
		parse = parseXML
	}
	doc, err := parse(name, data)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, &domain.ParseError{Document: name, Err: err}
	}
	return doc, nil
}

// parseXML reads the direct children of the root element.
// Body is the concatenated character data of the child, trimmed.
func parseXML(name string, data []byte) (*domain.Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	doc := &domain.Document{Name: name}

	var (
		depth    int
		rootSeen bool
		current  *domain.Element
		body     strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if rootSeen {
					return nil, fmt.Errorf("multiple root elements (second is <%s>)", t.Name.Local)
				}
				rootSeen = true
			case 2:
				el := domain.Element{Tag: t.Name.Local}
				for _, a := range t.Attr {
					el.Attrs = append(el.Attrs, domain.Attr{Name: a.Name.Local, Value: a.Value})
				}
				current = &el
				body.Reset()
			}
		case xml.EndElement:
			if depth == 2 && current != nil {
				current.Body = strings.TrimSpace(body.String())
				doc.Elements = append(doc.Elements, *current)
				current = nil
			}
			depth--
		case xml.CharData:
			switch {
			case current != nil:
				body.Write(t)
			case depth == 0 && len(bytes.TrimSpace(t)) > 0:
				return nil, fmt.Errorf("text outside of the root element")
			}
		}
	}

	if !rootSeen {
		return nil, fmt.Errorf("no root element")
	}
	return doc, nil
}

// parseYAML accepts either a mapping (key -> text, or key -> attributes)
// or a sequence of attribute mappings identified by their `id`.
func parseYAML(name string, data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := &domain.Document{Name: name}
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := root.Content[0]
	switch top.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(top.Content); i += 2 {
			key, val := top.Content[i], top.Content[i+1]
			el, err := yamlElement(key.Value, val)
			if err != nil {
				return nil, err
			}
			doc.Elements = append(doc.Elements, el)
		}
	case yaml.SequenceNode:
		for idx, item := range top.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: entry %d is not a mapping", item.Line, idx)
			}
			el, err := yamlElement("", item)
			if err != nil {
				return nil, err
			}
			if el.Tag == "" {
				return nil, fmt.Errorf("line %d: entry %d has no id", item.Line, idx)
			}
			doc.Elements = append(doc.Elements, el)
		}
	default:
		return nil, fmt.Errorf("line %d: expected a mapping or a sequence", top.Line)
	}

	return doc, nil
}

func yamlElement(tag string, val *yaml.Node) (domain.Element, error) {
	el := domain.Element{Tag: tag}
	switch val.Kind {
	case yaml.ScalarNode:
		el.Body = strings.TrimSpace(scalar(val))
	case yaml.MappingNode:
		for i := 0; i+1 < len(val.Content); i += 2 {
			k, v := val.Content[i], val.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return el, fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
			}
			switch k.Value {
			case bodyKey:
				el.Body = strings.TrimSpace(scalar(v))
			default:
				if k.Value == "id" && el.Tag == "" {
					el.Tag = scalar(v)
				}
				el.Attrs = append(el.Attrs, domain.Attr{Name: k.Value, Value: scalar(v)})
			}
		}
	default:
		return el, fmt.Errorf("line %d: element %q must be a scalar or a mapping", val.Line, tag)
	}
	return el, nil
}

// scalar returns the value of a scalar node, with null (~, null, empty) as "".
func scalar(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}
