// Package numparse converts text to fixed-width integers in bases 2 through 36,
// with prefix auto-detection and a Roman numeral mode.
package numparse

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	// ErrRange indicates the numeral does not fit in the target integer type.
	ErrRange = errors.New("numparse: value out of range")

	// ErrSyntax indicates the input is not a numeral in the requested base.
	ErrSyntax = errors.New("numparse: invalid syntax")

	// ErrInvalidBase indicates a base outside 0 and 2..36.
	ErrInvalidBase = errors.New("numparse: invalid base")
)

// NumError records a failed conversion.
type NumError struct {
	Func   string // Entry point that failed
	Num    string // Input text
	Offset int    // Byte offset where the failing numeral starts
	Err    error  // ErrRange, ErrSyntax or ErrInvalidBase
}

func (e *NumError) Error() string {
	return fmt.Sprintf("numparse: %s %q at offset %d: %s",
		e.Func, e.Num, e.Offset, strings.TrimPrefix(e.Err.Error(), "numparse: "))
}

func (e *NumError) Unwrap() error { return e.Err }
