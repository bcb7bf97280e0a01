package board

// Line is one of the eight winning triples
type Line struct {
	Name  string
	Cells [Size]Coord
}

// Contains reports whether c is one of the line's cells
func (l Line) Contains(c Coord) bool {
	for _, lc := range l.Cells {
		if lc == c {
			return true
		}
	}
	return false
}

func (l Line) String() string {
	return l.Name
}

// Lines in scan order: rows top-to-bottom, columns left-to-right, diagonal, anti-diagonal
var Lines = [8]Line{
	{"row 0", [Size]Coord{{0, 0}, {0, 1}, {0, 2}}},
	{"row 1", [Size]Coord{{1, 0}, {1, 1}, {1, 2}}},
	{"row 2", [Size]Coord{{2, 0}, {2, 1}, {2, 2}}},
	{"column 0", [Size]Coord{{0, 0}, {1, 0}, {2, 0}}},
	{"column 1", [Size]Coord{{0, 1}, {1, 1}, {2, 1}}},
	{"column 2", [Size]Coord{{0, 2}, {1, 2}, {2, 2}}},
	{"diagonal", [Size]Coord{{0, 0}, {1, 1}, {2, 2}}},
	{"anti-diagonal", [Size]Coord{{0, 2}, {1, 1}, {2, 0}}},
}
