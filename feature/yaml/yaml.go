/*
Package yaml provides methods to read and write feature specifications,
also known as metadata, as YAML documents.

A metadata document is an object with a features property, whose value is an
object with a property per feature:

	features:
	  X1: continuous
	  label: [a, b]

Only continuous features can be used as attributes to grow trees, so features
declared with a list of values are read as non-attribute columns.
*/
package yaml

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pbanos/c45/dataset"
	"github.com/pbanos/c45/feature"
	yaml "gopkg.in/yaml.v2"
)

// Continuous is the value declaring a feature as continuous.
const Continuous = "continuous"

/*
Metadata holds the parsed content of a metadata document: the names of the
continuous features in the order they were declared, and the available values
for every other declared feature.
*/
type Metadata struct {
	Continuous []string
	Discrete   map[string][]string
}

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns the metadata parsed from it or an error.
*/
func ReadFeatures(md []byte) (*Metadata, error) {
	doc := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if doc.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	m := &Metadata{Discrete: make(map[string][]string)}
	for _, item := range doc.Features {
		name := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case string:
			if values != Continuous {
				return nil, fmt.Errorf("invalid declaration %q for feature %s", values, name)
			}
			m.Continuous = append(m.Continuous, name)
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			m.Discrete[name] = stringVs
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, name)
		}
	}
	return m, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	m, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return m, err
}

/*
Features takes a dataset and a slice of candidate attribute columns and
returns, in candidate order, the continuous features for the candidates
declared continuous in the metadata.
*/
func (m *Metadata) Features(ds *dataset.Dataset, candidates []int) []*feature.ContinuousFeature {
	declared := make(map[string]bool, len(m.Continuous))
	for _, name := range m.Continuous {
		declared[name] = true
	}
	var features []*feature.ContinuousFeature
	for _, c := range candidates {
		name := ds.ColumnName(c)
		if declared[name] {
			features = append(features, feature.NewContinuousFeature(name, c))
		}
	}
	return features
}

/*
WriteFeatures takes a writer and a dataset and writes the metadata document
describing the dataset columns, in column order: numeric columns are
declared continuous and the rest get the list of their distinct values.
*/
func WriteFeatures(w io.Writer, ds *dataset.Dataset) error {
	features := make(yaml.MapSlice, 0, ds.ColumnCount())
	for c, name := range ds.ColumnNames() {
		if ds.IsNumericColumn(c) {
			features = append(features, yaml.MapItem{Key: name, Value: Continuous})
			continue
		}
		features = append(features, yaml.MapItem{Key: name, Value: distinctValues(ds, c)})
	}
	out, err := yaml.Marshal(struct {
		Features yaml.MapSlice `yaml:"features"`
	}{features})
	if err != nil {
		return fmt.Errorf("serializing features: %v", err)
	}
	_, err = w.Write(out)
	return err
}

func distinctValues(ds *dataset.Dataset, column int) []string {
	seen := make(map[string]bool)
	values := []string{}
	for r := 0; r < ds.Count(); r++ {
		v := ds.Cell(r, column)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
