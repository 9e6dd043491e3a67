package collision

// Step runs the tile half of a simulation step: bounds clamp, probe, solidity
// filter, then resolution. Integration happens before it and pickups after.
type Step struct {
	Grid   TileGrid
	Bounds Bounds
	// FullProbe switches from the 2x2 corner probe to ProbeAABB. NewStep sets
	// it for bodies larger than a cell.
	FullProbe bool
}

// StepResult describes what a step did to the body.
type StepResult struct {
	Landed bool
	// Probed is every candidate cell, with Solid set on the solid ones.
	Probed      []Candidate
	Solids      []Candidate
	Resolutions []Resolution
}

// NewStep builds a Step for a body of the given size on grid.
func NewStep(grid TileGrid, bodyWidth, bodyHeight float64) Step {
	return Step{
		Grid:      grid,
		Bounds:    BoundsFor(grid),
		FullProbe: !Covers(bodyWidth, bodyHeight, grid.CellSize()),
	}
}

// Candidates returns the cells b currently overlaps or borders, unfiltered.
func (s Step) Candidates(b *Body) []Candidate {
	if s.FullProbe {
		return ProbeAABB(b.Rect(), s.Grid.CellSize())
	}
	return Probe(b.X, b.Y, s.Grid.CellSize())
}

func (s Step) Run(b *Body) StepResult {
	var res StepResult
	res.Landed = s.Bounds.Clamp(b)

	res.Probed = s.Candidates(b)
	res.Solids = FilterSolid(s.Grid, append(make([]Candidate, 0, len(res.Probed)), res.Probed...))
	for i := range res.Probed {
		res.Probed[i].Solid = s.Grid.Solid(res.Probed[i].CellX, res.Probed[i].CellY)
	}
	landed, resolutions := Resolve(b, res.Solids, s.Grid.CellSize(), make([]Resolution, 0, len(res.Solids)))
	res.Resolutions = resolutions
	res.Landed = res.Landed || landed
	return res
}
