package tree

import (
	"fmt"
	"strings"
)

/*
Prediction represents a prediction made by a classification Tree
*/
type Prediction struct {
	classes       []string
	probabilities []float64
	weight        float64
}

/*
NewPrediction takes the class labels and the class distribution of a
node and returns the prediction for samples reaching it: the probability
of every class is its share of the distribution. A distribution with no
weight yields zero probabilities.
*/
func NewPrediction(classes []string, distribution []float64) *Prediction {
	p := &Prediction{classes: classes, probabilities: make([]float64, len(distribution))}
	for _, v := range distribution {
		p.weight += v
	}
	if p.weight == 0 {
		return p
	}
	for i, v := range distribution {
		p.probabilities[i] = v / p.weight
	}
	return p
}

/*
ProbabilityOf takes a class label and returns the float64 probability of that
class according to the prediction.
*/
func (p *Prediction) ProbabilityOf(class string) float64 {
	for i, c := range p.classes {
		if c == class && i < len(p.probabilities) {
			return p.probabilities[i]
		}
	}
	return 0.0
}

/*
Probabilities returns a map of class labels to their float64 probabilities
*/
func (p *Prediction) Probabilities() map[string]float64 {
	result := make(map[string]float64, len(p.classes))
	for i, c := range p.classes {
		if i < len(p.probabilities) {
			result[c] = p.probabilities[i]
		}
	}
	return result
}

/*
Weight returns the weight of the prediction: the weighted number of
training samples of the leaf the prediction was made from.
*/
func (p *Prediction) Weight() float64 {
	return p.weight
}

/*
PredictedValue returns the most probable class and its probability. Ties
are resolved in favour of the class listed first.
*/
func (p *Prediction) PredictedValue() (value string, prob float64) {
	best := -1
	for i, v := range p.probabilities {
		if i < len(p.classes) && (best < 0 || v > prob) {
			best = i
			value = p.classes[i]
			prob = v
		}
	}
	return
}

func (p *Prediction) String() string {
	parts := make([]string, 0, len(p.classes))
	for i, c := range p.classes {
		if i < len(p.probabilities) {
			parts = append(parts, fmt.Sprintf("%s:%v", c, p.probabilities[i]))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
