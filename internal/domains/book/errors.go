package book

import "errors"

var (
	// ErrBookNotFound reports an absent record. Reads turn it into an empty
	// 200 result; updates surface it as a failure.
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorMissing reports a foreign-key violation: the payload's
	// author_id does not reference an existing author.
	ErrAuthorMissing = errors.New("author_id does not reference an existing author")
)
