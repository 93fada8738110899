package contracts

type Sheet interface {
	SetCell(cellId string, value string) (*Cell, error)
	GetCell(cellId string) (*Cell, error)
	GetCellList() CellList
}

type Canonicalizer interface {
	Canonicalize(s string) string
}
