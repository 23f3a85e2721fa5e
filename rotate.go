package rubixcube

// RotateCells turns an H x W matrix 90 degrees into a W x H matrix where
// dst[r][c] = src[H-1-c][r]. Four applications give back the input.
// src must be rectangular.
func RotateCells[T any](src [][]T) [][]T {
	height := len(src)
	if height == 0 {
		return [][]T{}
	}
	width := len(src[0])
	for _, row := range src {
		if len(row) != width {
			panic("rubixcube: RotateCells on a ragged matrix")
		}
	}

	dst := make([][]T, width)
	for r := range dst {
		dst[r] = make([]T, height)
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			// Source row becomes destination column, counted from the right.
			dst[col][height-(row+1)] = src[row][col]
		}
	}
	return dst
}
