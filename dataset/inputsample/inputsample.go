/*
Package inputsample provides an implementation of feature.Sample whose values
are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

type readSample struct {
	obtainedValues        map[string]float64
	undefinedValue        string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
}

/*
New takes an io.Reader, a FeatureValueRequester and an undefinedValue coding
string and returns a Sample.

The returned Sample ValueFor method reads feature values first requesting
them with the given FeatureValueRequester and then parsing them from the
reader, one per line. Lines are read until one holds a valid number or the
undefinedValue string; other lines are rejected with the
FeatureValueRequester's RejectValueFor method. Undefined values take the
value dataset.AttributePolicy gives to unparsable cells. Each feature is asked
for once at most.
*/
func New(r io.Reader, featureValueRequester FeatureValueRequester, undefinedValue string) feature.Sample {
	return &readSample{make(map[string]float64), undefinedValue, bufio.NewScanner(r), featureValueRequester}
}

func (rs *readSample) ValueFor(ctx context.Context, f feature.Feature) (float64, error) {
	if value, ok := rs.obtainedValues[f.Name()]; ok {
		return value, nil
	}
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return 0, err
	}
	for rs.scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		line := strings.TrimSpace(rs.scanner.Text())
		if line == rs.undefinedValue {
			rs.obtainedValues[f.Name()] = dataset.AttributePolicy.Default
			return dataset.AttributePolicy.Default, nil
		}
		value, err := strconv.ParseFloat(line, 64)
		if err == nil {
			rs.obtainedValues[f.Name()] = value
			return value, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return 0, err
		}
	}
	if err = rs.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("EOF when requesting value for %s", f.Name())
}
