package dataset

// Error represents one of the kinds of failure that loading a dataset or
// growing a tree from it may end with. Errors returned by this module wrap
// one of the constants below, so callers should test for them with errors.Is.
type Error string

const (
	// ErrFileUnreadable is returned when the source of a dataset cannot be
	// opened or read.
	ErrFileUnreadable = Error("dataset source cannot be read")

	// ErrEmptyHeader is returned when a source has no non-blank line (or no
	// column) to take column names from.
	ErrEmptyHeader = Error("dataset has no header")

	// ErrEmptyDataset is returned when a source has a header but no data rows.
	ErrEmptyDataset = Error("dataset has no data rows")

	// ErrNoTargetColumn is returned when a dataset has no column named Y or y.
	ErrNoTargetColumn = Error("dataset has no target column named Y or y")

	// ErrNoNumericColumns is returned when no column besides the target one
	// is numeric.
	ErrNoNumericColumns = Error("dataset has no numeric attribute columns")
)

func (e Error) Error() string {
	return string(e)
}
