/*
Package pmml provides read access to PMML documents as a generic tree of
labeled elements with attributes, ordered children and text content.
*/
package pmml

import (
	"github.com/beevik/etree"
)

/*
Element is a node of a PMML document. Tags and attribute names are matched
by their local name, namespace prefixes are ignored.

All methods can be called on a nil *Element, so lookups can be chained
without checking every step.
*/
type Element struct {
	el *etree.Element
}

func wrap(el *etree.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{el}
}

// Tag returns the local name of the element.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.el.Tag
}

/*
Attr returns the value of the attribute with the given name and whether
the element has it.
*/
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

/*
Find returns the first direct child with the given tag or nil.
*/
func (e *Element) Find(tag string) *Element {
	if e == nil {
		return nil
	}
	return wrap(e.el.SelectElement(tag))
}

/*
FindAll returns the direct children with the given tag in document order.
*/
func (e *Element) FindAll(tag string) []*Element {
	if e == nil {
		return nil
	}
	var result []*Element
	for _, c := range e.el.SelectElements(tag) {
		result = append(result, wrap(c))
	}
	return result
}

// Content returns the text content of the element.
func (e *Element) Content() string {
	if e == nil {
		return ""
	}
	return e.el.Text()
}

// ID returns the id attribute of the element, used in error messages.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}
