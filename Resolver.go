package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sumSheet/contracts"
	"unicode"
)

const DefaultCellIds = "ABCD"

var numericLiteralRegex = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)$`)

// Resolver turns the raw inputs of a fixed set of single-letter cells into
// resolved values. A formula is a run of cell ids, each adding the value of
// the referenced cell.
type Resolver struct {
	canonicalizer contracts.Canonicalizer
	cellIds       []string
	known         map[rune]bool
}

// resolution is the scratch state of one ResolveAll call.
type resolution struct {
	resolver  *Resolver
	rawInputs map[string]string
	resolved  contracts.ResolvedValues
}

func NewResolver(canonicalizer contracts.Canonicalizer, cellIds string) (*Resolver, error) {
	resolver := &Resolver{
		canonicalizer: canonicalizer,
		known:         map[rune]bool{},
	}

	for _, cellId := range canonicalizer.Canonicalize(cellIds) {
		if !unicode.IsLetter(cellId) || resolver.known[cellId] {
			return nil, fmt.Errorf("cell ids `%s`: %w", cellIds, contracts.CellIdInvalidError)
		}
		resolver.known[cellId] = true
		resolver.cellIds = append(resolver.cellIds, string(cellId))
	}

	if len(resolver.cellIds) == 0 {
		return nil, fmt.Errorf("cell ids `%s`: %w", cellIds, contracts.CellIdInvalidError)
	}

	return resolver, nil
}

func (r *Resolver) CellIds() []string {
	return append([]string(nil), r.cellIds...)
}

// ResolveAll resolves every known cell from scratch. Known cells missing from
// rawInputs are empty, unknown keys are ignored.
func (r *Resolver) ResolveAll(rawInputs contracts.RawInputs) contracts.ResolvedValues {
	current := &resolution{
		resolver:  r,
		rawInputs: r.canonicalRawInputs(rawInputs),
		resolved:  make(contracts.ResolvedValues, len(r.cellIds)),
	}

	for _, cellId := range r.cellIds {
		current.resolve(cellId, nil)
	}

	return current.resolved
}

// IsFormula reports whether the input references any cell. It looks at the
// input text only and says nothing about whether it resolves.
func (r *Resolver) IsFormula(rawInput string) bool {
	return strings.ContainsFunc(r.canonicalizer.Canonicalize(rawInput), func(char rune) bool {
		return r.known[char]
	})
}

func (r *Resolver) isKnownCellId(cellId string) bool {
	runes := []rune(cellId)
	return len(runes) == 1 && r.known[runes[0]]
}

func (r *Resolver) isReferenceList(rawInput string) bool {
	for _, char := range rawInput {
		if !r.known[char] {
			return false
		}
	}

	return rawInput != ""
}

// canonicalRawInputs keys inputs by canonical cell id. When several keys name
// the same cell, the canonical key wins, then the smallest one.
func (r *Resolver) canonicalRawInputs(rawInputs contracts.RawInputs) map[string]string {
	canonical := make(map[string]string, len(r.cellIds))
	chosenKeys := make(map[string]string, len(r.cellIds))

	for key, rawInput := range rawInputs {
		cellId := r.canonicalizer.Canonicalize(key)
		if !r.isKnownCellId(cellId) {
			continue
		}

		if chosenKey, ok := chosenKeys[cellId]; ok && (chosenKey == cellId || (key != cellId && chosenKey < key)) {
			continue
		}

		chosenKeys[cellId] = key
		canonical[cellId] = r.canonicalizer.Canonicalize(rawInput)
	}

	return canonical
}

func (res *resolution) resolve(cellId string, path []string) contracts.ResolvedValue {
	for _, inProgress := range path {
		if inProgress == cellId {
			return contracts.ErrorValue(contracts.CircularReferenceError)
		}
	}

	if value, ok := res.resolved[cellId]; ok {
		return value
	}

	value := res.evaluate(cellId, append(path[:len(path):len(path)], cellId))
	res.resolved[cellId] = value
	return value
}

func (res *resolution) evaluate(cellId string, branchPath []string) contracts.ResolvedValue {
	rawInput := res.rawInputs[cellId]

	switch {
	case rawInput == "":
		return contracts.EmptyValue()

	case numericLiteralRegex.MatchString(rawInput):
		number, err := strconv.ParseFloat(rawInput, 64)
		if err != nil {
			return contracts.ErrorValue(contracts.MalformedInputError)
		}
		return contracts.NumberValue(number)

	case res.resolver.isReferenceList(rawInput):
		return res.sum(rawInput, branchPath)

	default:
		return contracts.ErrorValue(contracts.MalformedInputError)
	}
}

// sum adds up referenced cells. Empty terms are skipped, so the total stays
// empty until the first number; the first error term wins.
func (res *resolution) sum(formula string, branchPath []string) contracts.ResolvedValue {
	total := contracts.EmptyValue()

	for _, reference := range formula {
		value := res.resolve(string(reference), branchPath)

		switch {
		case value.IsError():
			return value
		case value.IsEmpty():
			continue
		case total.IsEmpty():
			total = value
		default:
			total.Number += value.Number
		}
	}

	if math.IsInf(total.Number, 0) || math.IsNaN(total.Number) {
		return contracts.ErrorValue(contracts.MalformedInputError)
	}

	return total
}
