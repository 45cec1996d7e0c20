package tree

import (
	"fmt"
	"sort"
	"strings"
)

/*
Prediction represents a prediction made by a decision Tree: the class
distribution of the node a sample reached.
*/
type Prediction struct {
	class         int
	probabilities map[int]float64
	weight        int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method of a tree
when the tree has no nodes to make a prediction with.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build a prediction
from a node without samples.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty dataset")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPredictionFromNode takes a node and returns the prediction for samples
reaching it, or ErrCannotPredictFromEmptySet if it has no samples.
*/
func NewPredictionFromNode(n *Node) (*Prediction, error) {
	if n.Samples == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	probs := make(map[int]float64, len(n.Distribution))
	for _, cc := range n.Distribution {
		probs[cc.Class] = float64(cc.Count) / float64(n.Samples)
	}
	return &Prediction{class: n.Class, probabilities: probs, weight: n.Samples}, nil
}

// Class returns the predicted class label.
func (p *Prediction) Class() int {
	return p.class
}

/*
ProbabilityOf takes a class label and returns its float64 probability
according to the prediction.
*/
func (p *Prediction) ProbabilityOf(class int) float64 {
	return p.probabilities[class]
}

/*
Weight returns the weight of the prediction: an
int equal to the number of samples in the node from which
the prediction was made
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedValue returns the predicted class and its prevalence
*/
func (p *Prediction) PredictedValue() (int, float64) {
	return p.class, p.probabilities[p.class]
}

func (p *Prediction) String() string {
	classes := make([]int, 0, len(p.probabilities))
	for c := range p.probabilities {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = fmt.Sprintf("%d:%.4f", c, p.probabilities[c])
	}
	return fmt.Sprintf("class %d [%s]", p.class, strings.Join(parts, " "))
}
