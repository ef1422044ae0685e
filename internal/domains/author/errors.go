package author

import "errors"

// ErrAuthorNotFound reports an absent record. For single-resource reads the
// handler turns this into an empty 200 result; for updates it is a failure.
var ErrAuthorNotFound = errors.New("author not found")
