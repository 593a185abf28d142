package source

// bounds is the bounding box of the non-empty cells of a grid (0-based, inclusive).
type bounds struct {
	minRow, maxRow, minCol, maxCol int
}

// dataBounds finds the bounding box of non-empty cells. ok is false when
// every cell is empty.
func dataBounds(rows [][]string) (b bounds, ok bool) {
	b = bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

// crop returns the rows inside b, each cut to the columns of b. Short rows
// stay short.
func crop(rows [][]string, b bounds) [][]string {
	out := make([][]string, 0, b.maxRow-b.minRow+1)
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		switch {
		case b.minCol >= len(row):
			out = append(out, nil)
		case b.maxCol+1 < len(row):
			out = append(out, row[b.minCol:b.maxCol+1])
		default:
			out = append(out, row[b.minCol:])
		}
	}
	return out
}
