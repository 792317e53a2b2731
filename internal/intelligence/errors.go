package intelligence

import "errors"

// ErrEmptyResult is returned when the model answered but produced nothing
// usable. Callers treat it like any other failure: no change.
var ErrEmptyResult = errors.New("llm returned an empty result")
