package ai

import (
	"errors"
	"fmt"
)

// ApologyMessage is what the user sees whenever a query could not be answered.
const ApologyMessage = "I encountered an error while processing your query. Please try again."

var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrEmptyResponse = errors.New("no response from AI model")
)

// QueryFailure reports that the language model could not be reached or gave no usable answer.
type QueryFailure struct {
	Provider string
	Err      error
}

func (f *QueryFailure) Error() string {
	return fmt.Sprintf("%s dispatch failed: %v", f.Provider, f.Err)
}

func (f *QueryFailure) Unwrap() error {
	return f.Err
}

// Message is the fixed user-facing text for this failure.
func (f *QueryFailure) Message() string {
	return ApologyMessage
}
