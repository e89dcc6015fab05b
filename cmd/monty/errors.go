package main

import "fmt"

// UsageError reports a wrong number of command line arguments.
type UsageError struct {
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("USAGE: %s file", e.Program)
}

// OpenError reports a program file that could not be opened.
type OpenError struct {
	Filename string
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Error: Can't open file %s", e.Filename)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
