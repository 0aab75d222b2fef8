// Package engine binds the triangulation, constraint, repair, grid,
// drape and smoothing packages into a single cooperative session that
// owns one mesh at a time, mirroring the teacher's mesh.Mesh as the
// top-level entry point callers construct once and drive through a
// sequence of operations.
package engine

import (
	"sync"

	"github.com/iceisfun/trimesh/constraint"
	"github.com/iceisfun/trimesh/drape"
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/grid"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/repair"
	"github.com/iceisfun/trimesh/smooth"
	"github.com/iceisfun/trimesh/spatial"
	"github.com/iceisfun/trimesh/triangulate"
)

// Engine is a single-threaded, cooperative session wrapping one mesh.
// Exactly one operation runs at a time: a second call arriving while one
// is in flight fails fast with ErrOperationInUse rather than blocking, so
// a caller holding an Engine across goroutines finds out immediately
// instead of deadlocking or silently serialising.
type Engine struct {
	mu   sync.Mutex
	busy bool
	cfg  config

	store    *meshstore.Store
	corners  [4]meshstore.NodeID
	hasQuad  bool
	perim    float64
	graze    float64
	nextLine int

	triIndex *spatial.TriangleIndex
}

// New creates an Engine with no mesh loaded yet.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// enter claims the single-operation slot or reports ErrOperationInUse.
// The returned func releases it; callers defer it immediately.
func (e *Engine) enter() (func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return nil, ErrOperationInUse
	}
	e.busy = true
	return func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}, nil
}

// Mesh returns the store backing the current mesh, or nil if none has
// been built yet. The caller must not mutate it concurrently with any
// Engine method.
func (e *Engine) Mesh() *meshstore.Store { return e.store }

// LoadMesh adopts store as the current mesh, replacing whatever mesh this
// Engine previously held. store is assumed to carry no seed cover quad.
func (e *Engine) LoadMesh(store *meshstore.Store) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if store == nil {
		return Fail(ErrDegenerate, ErrEmptyInput)
	}
	e.store = store
	e.hasQuad = false
	e.perim = store.Perimeter()
	e.graze = geom.GrazeDistance(e.perim)
	e.triIndex = nil
	return OK()
}

// BuildFromPoints triangulates pts into a new mesh, replacing whatever
// mesh this Engine previously held.
func (e *Engine) BuildFromPoints(pts []geom.Point3) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if len(pts) == 0 {
		return Fail(ErrBadArgCount, ErrEmptyInput)
	}

	res, berr := triangulate.Build(pts, triangulate.Options{
		Logger: e.cfg.logger,
	})
	if berr != nil {
		return Fail(ErrDegenerate, berr)
	}

	e.store = res.Store
	e.corners = res.Corners
	e.hasQuad = true
	e.perim = e.store.Perimeter()
	e.graze = geom.GrazeDistance(e.perim)
	e.triIndex = nil
	return OK()
}

// InsertConstraints projects lines onto the current mesh.
func (e *Engine) InsertConstraints(lines []constraint.Polyline) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	if len(lines) == 0 {
		return NoOp()
	}

	isCorner := triangulate.IsCornerSet(e.corners)
	for i := range lines {
		if lines[i].LineID == 0 {
			e.nextLine++
			lines[i].LineID = e.nextLine
		}
	}
	if e.cfg.organizeLinesFlag {
		lines = organizeLines(lines, e.graze)
	}

	errs := constraint.Insert(e.store, lines, constraint.Options{
		Exact:        true,
		CornerBias:   e.cfg.cornerBias,
		IsCorner:     isCorner,
		Polygonalize: e.cfg.polygonalizeConstraints,
		Chop:         e.cfg.chopLines,
	})
	e.triIndex = nil
	if len(errs) > 0 {
		return Fail(ErrDegenerate, errs[0])
	}
	return OK()
}

// RemoveSeedCorners strips the four contrived cover-quad nodes once the
// boundary is final (after every constraint has been inserted), the
// order the unconstrained triangulator itself calls for.
func (e *Engine) RemoveSeedCorners() Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	if !e.hasQuad {
		return NoOp()
	}

	changed := false
	for _, c := range e.corners {
		if repair.RemoveNode(e.store, c, e.graze) {
			changed = true
		}
	}
	e.hasQuad = false
	e.triIndex = nil
	if !changed {
		return NoOp()
	}
	return OK()
}

// Repair runs the topology cleanup pipeline (zero-length edge collapse,
// then zero-area triangle removal) until it stops finding anything new.
// removeZeroFlag gates the whole pass; splitLongFlag additionally splits
// any edge left much longer than the mesh's average afterward.
func (e *Engine) Repair() Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	if !e.cfg.removeZeroFlag {
		return NoOp()
	}
	repair.Run(e.store, e.perim)
	if e.cfg.splitLongFlag {
		if avg := e.store.AverageEdgeLength(); avg > 0 {
			repair.SplitLongEdges(e.store, avg, e.graze)
		}
	}
	e.triIndex = nil
	return OK()
}

// Legalize runs a global edge-swap pass to local Delaunay optimality
// under the engine's configured swap mode and corner bias.
func (e *Engine) Legalize() Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	isCorner := triangulate.IsCornerSet(e.corners)
	n := meshops.GlobalSwapPass(e.store, e.cfg.swapMode, e.cfg.cornerBias, isCorner)
	e.triIndex = nil
	if n == 0 {
		return NoOp()
	}
	return OK()
}

// Compact renumbers nodes/edges/triangles, dropping tombstoned entries.
// Call it after a batch of deletions to reclaim memory; any NodeID/
// EdgeID/TriID held by the caller from before this call is invalid
// afterward.
func (e *Engine) Compact() (meshstore.CompactResult, Result) {
	done, err := e.enter()
	if err != nil {
		return meshstore.CompactResult{}, Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return meshstore.CompactResult{}, Fail(ErrDegenerate, ErrNoMesh)
	}
	cr := e.store.RemoveDeleted()
	e.triIndex = nil
	return cr, OK()
}

// ToGrid rasterises the current mesh onto a new grid of the requested
// dimensions, anchored at (originX, originY) with the given spacing.
func (e *Engine) ToGrid(rows, cols int, originX, originY, xspace, yspace float64) (*grid.Grid, Result) {
	done, err := e.enter()
	if err != nil {
		return nil, Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return nil, Fail(ErrDegenerate, ErrNoMesh)
	}
	if rows <= 0 || cols <= 0 {
		return nil, Fail(ErrBadGridDims, ErrEmptyInput)
	}

	g := grid.New(rows, cols, originX, originY, xspace, yspace)
	grid.FromMesh(e.store, g)
	return g, OK()
}

// BuildFromGrid replaces the current mesh with one converted from g,
// using the equilateral style, or the cell-diagonal style when
// dontDoEquilateral is configured.
func (e *Engine) BuildFromGrid(g *grid.Grid) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if g == nil || g.Rows < 2 || g.Cols < 2 {
		return Fail(ErrBadGridDims, ErrEmptyInput)
	}

	var s *meshstore.Store
	if e.cfg.dontDoEquilateral {
		s = grid.ToMeshCellDiagonal(g)
	} else {
		s = grid.ToMeshEquilateral(g)
	}

	grid.RemoveNulls(s)
	e.store = s
	e.hasQuad = false
	e.perim = s.Perimeter()
	e.graze = geom.GrazeDistance(e.perim)
	e.triIndex = nil
	return OK()
}

// ensureTriangleIndex lazily builds (or rebuilds, after a topology-
// mutating call reset it to nil) the spatial index drape needs.
func (e *Engine) ensureTriangleIndex() *spatial.TriangleIndex {
	if e.triIndex != nil {
		return e.triIndex
	}
	var minX, minY, maxX, maxY float64
	first := true
	for i := range e.store.Nodes {
		n := &e.store.Nodes[i]
		if n.Deleted {
			continue
		}
		if first {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			first = false
			continue
		}
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	e.triIndex = spatial.BuildTriangleIndex(e.store, minX, minY, maxX, maxY)
	return e.triIndex
}

// Drape interpolates z at every vertex and triangle-edge crossing along
// pts, clipping the polyline to the mesh boundary first.
func (e *Engine) Drape(pts []geom.Point2) ([]geom.Point3, Result) {
	done, err := e.enter()
	if err != nil {
		return nil, Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return nil, Fail(ErrDegenerate, ErrNoMesh)
	}
	if len(pts) < 2 {
		return nil, Fail(ErrBadArgCount, ErrEmptyInput)
	}

	idx := e.ensureTriangleIndex()
	out, derr := drape.DrapePolyline(e.store, idx, pts, e.graze)
	if derr != nil {
		return nil, Fail(ErrDegenerate, derr)
	}
	return out, OK()
}

// ClipToPolygon discards every edge (and now-isolated node) on the
// chosen side of ring.
func (e *Engine) ClipToPolygon(ring []geom.Point2, mode drape.KeepMode) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	if len(ring) < 3 {
		return Fail(ErrBadArgCount, ErrEmptyInput)
	}
	drape.ClipMeshToPolygon(e.store, ring, mode, e.graze)
	e.triIndex = nil
	return OK()
}

// Smooth applies the grid-mediated bezier-consistent smoother pipeline
// in place.
func (e *Engine) Smooth(opts smooth.Options) Result {
	done, err := e.enter()
	if err != nil {
		return Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return Fail(ErrDegenerate, ErrNoMesh)
	}
	if serr := smooth.Run(e.store, opts); serr != nil {
		return Fail(ErrDegenerate, serr)
	}
	return OK()
}
