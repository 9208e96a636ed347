package frogger

// Snapshot is the per-tick view of the state handed to renderers and the
// headless simulator. It shares no memory with the State.
type Snapshot struct {
	Tick      uint64         `yaml:"tick"`
	Cols      int            `yaml:"cols"`
	Rows      int            `yaml:"rows"`
	CellSize  float64        `yaml:"cell_size"`
	SafeRow   int            `yaml:"safe_row"`
	Occupancy [][]int        `yaml:"occupancy,flow"`
	Obstacles []ObstacleView `yaml:"obstacles"`
	Player    PlayerView     `yaml:"player"`
}

// ObstacleView is one obstacle rectangle tagged with its set.
type ObstacleView struct {
	Set   string  `yaml:"set"`
	Color string  `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// PlayerView is the player's circular bounds plus its cell.
type PlayerView struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Col    int     `yaml:"col"`
	Row    int     `yaml:"row"`
	Color  string  `yaml:"color"`
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	g := s.Grid
	occ := make([][]int, g.Rows())
	for row := range occ {
		occ[row] = make([]int, g.Cols())
		for col := range occ[row] {
			occ[row][col] = g.Occupancy(col, row)
		}
	}

	var views []ObstacleView
	for _, set := range s.Sets {
		for _, o := range set.Obstacles {
			views = append(views, ObstacleView{
				Set:   set.Name,
				Color: set.Color.String(),
				X:     o.Bounds.X,
				Y:     o.Bounds.Y,
				W:     o.Bounds.W,
				H:     o.Bounds.H,
			})
		}
	}

	col, row := s.Player.Cell(g)
	return Snapshot{
		Tick:      s.tick,
		Cols:      g.Cols(),
		Rows:      g.Rows(),
		CellSize:  g.CellSize(),
		SafeRow:   s.SafeRow,
		Occupancy: occ,
		Obstacles: views,
		Player: PlayerView{
			X:      s.Player.X,
			Y:      s.Player.Y,
			Radius: s.Player.Radius,
			Col:    col,
			Row:    row,
			Color:  s.PlayerColor.String(),
		},
	}
}
