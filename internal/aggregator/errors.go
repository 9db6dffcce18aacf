package aggregator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when the query is blank after trimming.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrPartialEnrichment marks a detail facet or rating that could not be
	// fetched. The item is kept with that facet empty.
	ErrPartialEnrichment = errors.New("partial enrichment")
)

// InternalError is an unexpected failure inside the pipeline.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
