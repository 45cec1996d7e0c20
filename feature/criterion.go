package feature

import (
	"context"
	"fmt"
)

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample value for the feature satisfies the criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(ctx context.Context, sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the numeric value corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(context.Context, Feature) (float64, error)
}

/*
ThresholdCriterion is the constraint a binary split imposes on one of its
branches: values strictly below the threshold go to the left branch, values
greater than or equal to it go to the right one.
*/
type ThresholdCriterion struct {
	feature   *ContinuousFeature
	threshold float64
	below     bool
}

/*
NewBelowCriterion takes a continuous feature and a threshold and returns the
criterion satisfied by samples whose value for the feature is < threshold.
*/
func NewBelowCriterion(f *ContinuousFeature, threshold float64) *ThresholdCriterion {
	return &ThresholdCriterion{f, threshold, true}
}

/*
NewAtLeastCriterion takes a continuous feature and a threshold and returns the
criterion satisfied by samples whose value for the feature is >= threshold.
*/
func NewAtLeastCriterion(f *ContinuousFeature, threshold float64) *ThresholdCriterion {
	return &ThresholdCriterion{f, threshold, false}
}

// Feature returns the feature to which the constraint applies.
func (tc *ThresholdCriterion) Feature() Feature {
	return tc.feature
}

// Threshold returns the value separating both branches of the split.
func (tc *ThresholdCriterion) Threshold() float64 {
	return tc.threshold
}

// Below returns whether the criterion selects values under the threshold.
func (tc *ThresholdCriterion) Below() bool {
	return tc.below
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion, or the error obtained when asking the sample
for its value.
*/
func (tc *ThresholdCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	v, err := sample.ValueFor(ctx, tc.feature)
	if err != nil {
		return false, err
	}
	if tc.below {
		return v < tc.threshold, nil
	}
	return v >= tc.threshold, nil
}

func (tc *ThresholdCriterion) String() string {
	if tc.below {
		return fmt.Sprintf("%s < %.2f", tc.feature.Name(), tc.threshold)
	}
	return fmt.Sprintf("%s >= %.2f", tc.feature.Name(), tc.threshold)
}
