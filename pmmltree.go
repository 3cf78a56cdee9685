/*
Package pmmltree builds classifiers out of PMML TreeModel documents.

The decision tree of the document is flattened into a tree.Tree, a node
table that can be evaluated without the document, and its fields into a
feature.Mapping that turns samples into the feature vectors the tree
is evaluated on.
*/
package pmmltree

import (
	"context"
	"fmt"

	"github.com/pbanos/pmmltree/dataset"
	"github.com/pbanos/pmmltree/feature"
	"github.com/pbanos/pmmltree/pmml"
	"github.com/pbanos/pmmltree/tree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const binarySplit = "binarySplit"

var log = logrus.WithField("component", "pmmltree")

/*
Classifier predicts the class of samples with a flattened decision tree.
It is read-only once built and can be shared by concurrent predictions.
*/
type Classifier struct {
	Mapping *feature.Mapping
	Tree    *tree.Tree
}

/*
New takes a PMML document and optional field declarations and returns
the Classifier for the TreeModel in the document or an error.

The given declarations extend the categories of the categorical fields
they name before the tree is flattened, so they can supply category
values missing from the document.

Class labels are the values declared for the target field. When the
target declares none, they are collected from the scores of the leaves
of the tree, in document order.
*/
func New(doc *pmml.Document, declarations ...feature.Declaration) (*Classifier, error) {
	model := doc.TreeModel()
	if model == nil {
		return nil, ErrMissingTreeModel
	}
	if sc, _ := model.Attr("splitCharacteristic"); sc != binarySplit {
		return nil, errors.Wrapf(ErrUnsupportedSplitCharacteristic, "splitCharacteristic %q", sc)
	}
	root := model.Find("Node")
	if root == nil {
		return nil, errors.Wrap(ErrMissingTreeModel, "tree model has no root node")
	}
	fields, err := doc.DataFields()
	if err != nil {
		return nil, err
	}
	derived, err := doc.DerivedFields(model)
	if err != nil {
		return nil, err
	}
	m, err := feature.NewMapping(fields, derived, doc.Target(model))
	if err != nil {
		return nil, err
	}
	if len(declarations) > 0 {
		err = m.Extend(declarations)
		if err != nil {
			return nil, err
		}
	}
	classes := m.Classes()
	if len(classes) == 0 {
		classes = leafClasses(root)
		log.WithField("classes", classes).Debug("target declares no values, using classes from leaves")
	}
	t, err := tree.Flatten(root, classes, m)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"nodes": t.NodeCount(), "depth": t.MaxDepth(), "features": m.Columns()}).Debug("tree flattened")
	return &Classifier{Mapping: m, Tree: t}, nil
}

/*
LoadFile takes the path of a PMML file and optional field declarations
and returns the Classifier for the document in the file. See New.
*/
func LoadFile(path string, declarations ...feature.Declaration) (*Classifier, error) {
	doc, err := pmml.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(doc, declarations...)
}

/*
Predict takes a context and a sample and returns the prediction of the
classifier for it or an error if the sample has values that cannot be
decoded for their fields.
*/
func (c *Classifier) Predict(ctx context.Context, s dataset.Sample) (*tree.Prediction, error) {
	x, err := c.Mapping.Vector(ctx, s)
	if err != nil {
		return nil, err
	}
	return c.PredictVector(x)
}

/*
PredictVector takes a feature vector and returns the prediction of the
classifier for it.
*/
func (c *Classifier) PredictVector(x []float64) (*tree.Prediction, error) {
	dist, err := c.Tree.Evaluate(x)
	if err != nil {
		return nil, err
	}
	return tree.NewPrediction(c.Tree.Classes, dist), nil
}

/*
Test takes a context and a dataset and returns the ratio of samples in the
dataset whose target value is the class predicted for them and the number
of samples that could not be predicted because their values could not
be decoded. Any other error is returned.
*/
func (c *Classifier) Test(ctx context.Context, s dataset.Dataset) (float64, int, error) {
	target := c.Mapping.Target()
	if target == nil {
		return 0.0, 0, fmt.Errorf("testing: the document declares no target field")
	}
	samples, err := s.Samples(ctx)
	if err != nil {
		return 0.0, 0, err
	}
	if len(samples) == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for _, sample := range samples {
		p, err := c.Predict(ctx, sample)
		if err != nil {
			var fe feature.Error
			if !errors.As(err, &fe) {
				return 0.0, 0, err
			}
			log.WithError(err).Debug("cannot predict sample")
			errCount++
			continue
		}
		pV, _ := p.PredictedValue()
		v, err := sample.ValueFor(ctx, target.Name)
		if err != nil {
			return 0.0, 0, err
		}
		if v != nil && pV == classOf(target, v) {
			result += 1.0
		}
	}
	return result / float64(len(samples)), errCount, nil
}

func classOf(target *feature.Field, raw interface{}) string {
	v, err := target.Decoder.Decode(raw)
	if err == nil {
		switch v := v.(type) {
		case feature.Category:
			return v.Value
		case feature.OrdinalValue:
			return v.Value
		}
	}
	return fmt.Sprintf("%v", raw)
}

func leafClasses(root *pmml.Element) []string {
	var classes []string
	seen := make(map[string]bool)
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	var walk func(*pmml.Element)
	walk = func(n *pmml.Element) {
		children := n.FindAll("Node")
		if len(children) == 0 {
			for _, sd := range n.FindAll("ScoreDistribution") {
				if v, ok := sd.Attr("value"); ok {
					add(v)
				}
			}
			if s, ok := n.Attr("score"); ok {
				add(s)
			}
			return
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(root)
	return classes
}
