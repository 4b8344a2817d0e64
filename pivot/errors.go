package pivot

import "errors"

// Sentinel errors returned by grouping and pivot operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := pivot.GroupBy(records, nil, false)
//	if errors.Is(err, pivot.ErrInvalidArgument) {
//	    // empty key path
//	}
var (
	// ErrInvalidArgument is returned before any output is produced when a
	// key path, group field or merge map is empty or malformed.
	ErrInvalidArgument = errors.New("pivot: invalid argument")
)
