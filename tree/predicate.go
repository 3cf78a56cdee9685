package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pbanos/pmmltree/feature"
	"github.com/pbanos/pmmltree/pmml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "tree")

/*
PredicateKind tells the kind of test a predicate performs.
*/
type PredicateKind int

const (
	// Threshold predicates compare a numeric or ordinal field against a
	// single value.
	Threshold PredicateKind = iota
	// CategoryMask predicates test the membership of a categorical field
	// value to a set of categories.
	CategoryMask
)

// Threshold predicate operators.
const (
	LessOrEqual    = "lessOrEqual"
	LessThan       = "lessThan"
	GreaterThan    = "greaterThan"
	GreaterOrEqual = "greaterOrEqual"
)

// Set predicate operators.
const (
	IsIn    = "isIn"
	IsNotIn = "isNotIn"
)

/*
Predicate is the test a node of a document imposes on samples.
*/
type Predicate struct {
	Kind  PredicateKind
	Field string
	// Operator is the comparison operator of threshold predicates or
	// the boolean operator of category mask predicates.
	Operator string
	// Value is the literal of threshold predicates.
	Value string
	// Values are the category literals of category mask predicates.
	Values []string
}

/*
Encoding is an encoded predicate: the feature it tests and the split
payload for it. When Swapped is true the samples satisfying the predicate
take the right branch, so the children of the node must be flattened
in reverse order.
*/
type Encoding struct {
	Feature int
	Split   Split
	Swapped bool
}

/*
ParsePredicate takes a document node and returns the predicate it holds or
an error wrapping ErrUnsupportedPredicate if it holds neither a
SimplePredicate nor a SimpleSetPredicate.
*/
func ParsePredicate(n *pmml.Element) (*Predicate, error) {
	if sp := n.Find("SimplePredicate"); sp != nil {
		field, _ := sp.Attr("field")
		operator, _ := sp.Attr("operator")
		value, _ := sp.Attr("value")
		return &Predicate{Kind: Threshold, Field: field, Operator: operator, Value: value}, nil
	}
	if ssp := n.Find("SimpleSetPredicate"); ssp != nil {
		field, _ := ssp.Attr("field")
		operator, _ := ssp.Attr("booleanOperator")
		array := ssp.Find("Array")
		if array == nil {
			return nil, errors.Wrapf(ErrUnsupportedPredicate, "set predicate without array in node %q", n.ID())
		}
		return &Predicate{Kind: CategoryMask, Field: field, Operator: operator, Values: parseArray(array.Content())}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedPredicate, "unknown predicate structure in node %q", n.ID())
}

/*
Encode takes a field mapping and returns the encoding of the predicate or
an error.

Threshold predicates are encoded so that samples whose feature value is
less than or equal to the split threshold satisfy the split. Category
mask predicates set the bit of every listed category, complementing the
mask for the isNotIn operator. Categories missing from the field are
appended to its categories.
*/
func (p *Predicate) Encode(m *feature.Mapping) (*Encoding, error) {
	f, err := m.Lookup(p.Field)
	if err != nil {
		return nil, err
	}
	if p.Kind == CategoryMask {
		return p.encodeCategoryMask(f)
	}
	return p.encodeThreshold(f)
}

func (p *Predicate) encodeThreshold(f *feature.Field) (*Encoding, error) {
	var t float64
	switch dec := f.Decoder.(type) {
	case *feature.Categorical:
		return nil, errors.Wrapf(ErrUnsupportedPredicate, "threshold on categorical field %q", f.Name)
	case *feature.Ordinal:
		rank, ok := dec.Rank(p.Value)
		if !ok {
			return nil, errors.Wrapf(feature.ErrInvalidOrdinalValue, "field %q: %q", f.Name, p.Value)
		}
		t = float64(rank)
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrUnsupportedPredicate, "field %q: threshold %q", f.Name, p.Value)
		}
		t = v
	}
	e := &Encoding{Feature: f.Column}
	switch p.Operator {
	case LessOrEqual, "":
	case LessThan:
		t = math.Nextafter(t, math.Inf(-1))
	case GreaterThan:
		e.Swapped = true
	case GreaterOrEqual:
		t = math.Nextafter(t, math.Inf(-1))
		e.Swapped = true
	default:
		return nil, errors.Wrapf(ErrUnsupportedPredicate, "operator %q on field %q", p.Operator, f.Name)
	}
	e.Split = ThresholdSplit(t)
	return e, nil
}

func (p *Predicate) encodeCategoryMask(f *feature.Field) (*Encoding, error) {
	dec, ok := f.Decoder.(*feature.Categorical)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedPredicate, "set predicate on non-categorical field %q", f.Name)
	}
	if p.Operator != IsIn && p.Operator != IsNotIn {
		return nil, errors.Wrapf(ErrUnsupportedPredicate, "boolean operator %q on field %q", p.Operator, f.Name)
	}
	missing := make(map[string]bool)
	for _, v := range p.Values {
		if _, ok := dec.Categories.Index(v); !ok {
			missing[v] = true
		}
	}
	if n := dec.Categories.Len() + len(missing); n > MaxCategories {
		return nil, errors.Wrapf(ErrCategorySetOverflow, "field %q would have %d categories", f.Name, n)
	}
	var mask uint64
	for _, v := range p.Values {
		i, added := dec.Categories.Add(v)
		if added {
			log.WithFields(logrus.Fields{"field": f.Name, "category": v}).
				Warn("categorical values are missing in the document, inferring them from tree splits")
		}
		mask |= 1 << uint(i)
	}
	if p.Operator == IsNotIn {
		mask = ^mask
	}
	return &Encoding{Feature: f.Column, Split: MaskSplit(mask)}, nil
}

func (p *Predicate) String() string {
	if p.Kind == CategoryMask {
		return fmt.Sprintf("%s %s %v", p.Field, p.Operator, p.Values)
	}
	return fmt.Sprintf("%s %s %s", p.Field, p.Operator, p.Value)
}

// parseArray splits a PMML string array into its literals. Literals are
// delimited by whitespace, their quotes dropped, and escaped quotes
// within them kept as quotes.
func parseArray(content string) []string {
	tokens := strings.Fields(content)
	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts := strings.Split(t, `\"`)
		for i := range parts {
			parts[i] = strings.Replace(parts[i], `"`, "", -1)
		}
		result = append(result, strings.Join(parts, `"`))
	}
	return result
}
