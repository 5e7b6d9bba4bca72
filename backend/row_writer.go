package backend

// RowWriter is an optional optimization for bulk row updates.
// Backends that can write a run of cells in one call implement it;
// the runtime falls back to SetContent per cell otherwise.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}

// SetRow writes a horizontal run of cells.
func (t *TcellBackend) SetRow(y int, startX int, cells []Cell) {
	if t == nil || t.screen == nil {
		return
	}
	for i, cell := range cells {
		t.screen.SetContent(startX+i, y, cell.Rune, nil, toTcellStyle(cell.Style))
	}
}
