package contracts

import "io"

type SheetExporter interface {
	Export(cells CellList, w io.Writer) error
}
