package contracts

import (
	"errors"
	"fmt"
)

type RawInputs map[string]string

type ResolvedValues map[string]ResolvedValue

type Resolver interface {
	ResolveAll(rawInputs RawInputs) ResolvedValues
	IsFormula(rawInput string) bool
	CellIds() []string
}

type ValueKind uint8

const (
	ValueEmpty ValueKind = iota
	ValueNumber
	ValueError
)

const CircularReferenceLabel = "CIRCULAR REFERENCE!"
const MalformedInputLabel = "INVALID INPUT!"

var ResolutionError = errors.New("resolution error")

var CircularReferenceError = fmt.Errorf("%w: %s", ResolutionError, "circular reference detected")

var MalformedInputError = fmt.Errorf("%w: %s", ResolutionError, "input is neither a number nor a formula")

// ResolvedValue is the outcome of resolving one cell. Err is set only for ValueError.
type ResolvedValue struct {
	Kind   ValueKind
	Number float64
	Err    error
}

func EmptyValue() ResolvedValue {
	return ResolvedValue{Kind: ValueEmpty}
}

func NumberValue(number float64) ResolvedValue {
	return ResolvedValue{Kind: ValueNumber, Number: number}
}

func ErrorValue(err error) ResolvedValue {
	return ResolvedValue{Kind: ValueError, Err: err}
}

func (v ResolvedValue) IsEmpty() bool {
	return v.Kind == ValueEmpty
}

func (v ResolvedValue) IsError() bool {
	return v.Kind == ValueError
}
