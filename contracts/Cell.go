package contracts

import (
	"errors"
)

type Cell struct {
	Id      string `json:"id"`
	Value   string `json:"value"`
	Result  string `json:"result"`
	Formula bool   `json:"formula"`
}

type CellList []*Cell

var CellNotFoundError = errors.New("cell not found")

var CellIdInvalidError = errors.New("cell id should be a single unique letter")
