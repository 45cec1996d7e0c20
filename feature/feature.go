package feature

/*
Feature represents a property of the samples that can be observed
*/
type Feature interface {
	Name() string
}

/*
ContinuousFeature represents a numeric attribute: a dataset column, known by
its name and its index in the header, whose values are read as float64.
*/
type ContinuousFeature struct {
	name   string
	column int
}

/*
NewContinuousFeature takes a name string and a column index and returns a
continuous feature for the column with the given name and index.
*/
func NewContinuousFeature(name string, column int) *ContinuousFeature {
	return &ContinuousFeature{name, column}
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

// Column returns the index of the dataset column the feature was taken from.
func (cf *ContinuousFeature) Column() int {
	return cf.column
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}
