package main

import (
	"fmt"
	"sumSheet/contracts"
	"sync"
)

// Sheet keeps the raw inputs of the fixed cell set in memory. Every SetCell
// is a commit: all cells are resolved again and the result snapshot is
// replaced as a whole.
type Sheet struct {
	mu                sync.RWMutex
	resolver          contracts.Resolver
	canonicalizer     contracts.Canonicalizer
	webhookDispatcher contracts.WebhookDispatcher
	cellIds           []string
	rawInputs         contracts.RawInputs
	resolved          contracts.ResolvedValues
}

func NewSheet(
	resolver contracts.Resolver, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher,
) *Sheet {
	s := &Sheet{
		resolver:          resolver,
		canonicalizer:     canonicalizer,
		webhookDispatcher: webhookDispatcher,
		cellIds:           resolver.CellIds(),
		rawInputs:         contracts.RawInputs{},
	}

	for _, cellId := range s.cellIds {
		s.rawInputs[cellId] = ""
	}
	s.resolved = resolver.ResolveAll(s.copyRawInputs())

	return s
}

func (s *Sheet) SetCell(cellId string, value string) (*contracts.Cell, error) {
	canonicalCellId := s.canonicalizer.Canonicalize(cellId)
	value = s.canonicalizer.Canonicalize(value)

	s.mu.Lock()

	previousValue, ok := s.rawInputs[canonicalCellId]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.CellNotFoundError)
	}

	s.rawInputs[canonicalCellId] = value
	previous := s.resolved
	s.resolved = s.resolver.ResolveAll(s.copyRawInputs())

	changed := make([]*contracts.Cell, 0, len(s.cellIds))
	for _, id := range s.cellIds {
		if (id == canonicalCellId && previousValue != value) || previous[id].Display() != s.resolved[id].Display() {
			changed = append(changed, s.makeCell(id))
		}
	}
	cell := s.makeCell(canonicalCellId)

	// Notify never blocks, so it runs under the lock to keep commit order.
	if len(changed) != 0 && s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify(changed)
	}

	s.mu.Unlock()

	return cell, nil
}

func (s *Sheet) GetCell(cellId string) (*contracts.Cell, error) {
	canonicalCellId := s.canonicalizer.Canonicalize(cellId)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.rawInputs[canonicalCellId]; !ok {
		return nil, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.CellNotFoundError)
	}

	return s.makeCell(canonicalCellId), nil
}

func (s *Sheet) GetCellList() contracts.CellList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cellList := make(contracts.CellList, 0, len(s.cellIds))
	for _, cellId := range s.cellIds {
		cellList = append(cellList, s.makeCell(cellId))
	}

	return cellList
}

func (s *Sheet) makeCell(cellId string) *contracts.Cell {
	rawInput := s.rawInputs[cellId]

	return &contracts.Cell{
		Id:      cellId,
		Value:   rawInput,
		Result:  s.resolved[cellId].Display(),
		Formula: s.resolver.IsFormula(rawInput),
	}
}

// copyRawInputs hands the resolver a snapshot it can not observe changing.
func (s *Sheet) copyRawInputs() contracts.RawInputs {
	snapshot := make(contracts.RawInputs, len(s.rawInputs))
	for cellId, rawInput := range s.rawInputs {
		snapshot[cellId] = rawInput
	}

	return snapshot
}
