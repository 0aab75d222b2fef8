package triangulate

import (
	"log"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/spatial"
)

// minSafetyCap is the floor step 3 mentions: "a safety cap
// (points - duplicates - 1, lower-bounded by a constant)".
const minSafetyCap = 16

// Options configures the unconstrained triangulation build.
type Options struct {
	// InflatePct inflates the bounding box before seeding the cover
	// quadrilateral.
	InflatePct float64

	// Graze is the grazing distance used throughout the build; zero
	// means derive it from the inflated bounding perimeter.
	Graze float64

	// ConvexHull enables the final pass that forces corner points out
	// even at the cost of equilateralness.
	ConvexHull bool

	// Logger receives diagnostics when a fixed cap is hit.
	// A nil Logger means log.Default().
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Result is what Build hands back: the populated store and the four
// corner node ids so a caller (or a later pass) can remove them.
type Result struct {
	Store   *meshstore.Store
	Corners [4]meshstore.NodeID
}

// Build implements end to end: seed quad, refinement loop
// (raw-point-index-driven split + edge swap to local optimality), final
// corner-biased swap pass, and optional convex-hull pass. It does not
// remove the corner nodes itself -- that is repair's job once constraints
// (if any) have also been inserted, since corner removal can only happen
// safely after the mesh boundary is final.
func Build(pts []geom.Point3, opts Options) (Result, error) {
	if len(pts) == 0 {
		return Result{}, ErrNoPoints
	}

	pts2d := make([]geom.Point2, len(pts))
	for i, p := range pts {
		pts2d[i] = p.XY()
	}

	minP, maxP, _ := geom.BoundingBox(pts2d)
	perimeter := 2 * ((maxP.X - minP.X) + (maxP.Y - minP.Y))
	graze := opts.Graze
	if graze <= 0 {
		graze = geom.GrazeDistance(perimeter)
	}

	inflate := opts.InflatePct
	if inflate <= 0 {
		inflate = 0.05
	}

	s := meshstore.New()
	corners, err := SeedQuad(s, pts2d, inflate)
	if err != nil {
		return Result{}, err
	}
	isCorner := IsCornerSet(corners)

	rpIndex := spatial.NewRawPointIndex(minP.X, minP.Y, maxP.X, maxP.Y, len(pts2d), func(i int) (float64, float64) {
		return pts2d[i].X, pts2d[i].Y
	})

	used := make([]bool, len(pts2d))

	seen := make(map[geom.Point2]bool, len(pts2d))
	duplicates := 0
	for _, p := range pts2d {
		if seen[p] {
			duplicates++
		}
		seen[p] = true
	}
	safetyCap := len(pts) - duplicates - 1
	if safetyCap < minSafetyCap {
		safetyCap = minSafetyCap
	}
	splitsSoFar := 0
	capHit := false

	for {
		splitsThisPass := 0

		for i := 0; i < len(s.Triangles); i++ {
			t := meshstore.TriID(i)
			if s.Triangles[i].Deleted {
				continue
			}
			if splitsSoFar >= safetyCap {
				capHit = true
				break
			}

			bx0, by0, bx1, by1 := TriangleBBox(s, t)
			cx, cy := (bx0+bx1)/2, (by0+by1)/2
			halfW, halfH := (bx1-bx0)/2, (by1-by0)/2

			id, found := rpIndex.FindUnusedInBox(cx, cy, halfW, halfH, func(id int) bool {
				if used[id] {
					return true
				}
				return !PointInTriangle(s, t, pts2d[id], graze)
			})
			if !found {
				continue
			}

			used[id] = true
			p := pts[id]
			nodeID := s.AddNode(p.X, p.Y, p.Z, meshstore.Undefined)
			s.Nodes[nodeID].RP = id

			res, err := meshops.SplitTriangle(s, t, nodeID, graze)
			if err != nil {
				continue
			}
			splitsThisPass++
			splitsSoFar++
			meshops.LegalizeAround(s, res.EdgesToLegalize, meshstore.SwapAny, 1, isCorner)
		}

		if capHit {
			opts.logger().Printf("triangulate: safety cap (%d) reached, returning partial mesh", safetyCap)
			break
		}

		meshops.GlobalSwapPass(s, meshstore.SwapAny, 1, isCorner)

		if splitsThisPass == 0 {
			break
		}
	}

	meshops.GlobalSwapPass(s, meshstore.SwapAny, CornerBias, isCorner)

	if opts.ConvexHull {
		forceCornerOut(s, corners)
	}

	return Result{Store: s, Corners: corners}, nil
}

// forceCornerOut implements step 4's optional convex-hull pass:
// swap any edge incident to a corner node unconditionally (FORCE_SWAP),
// even if that momentarily worsens equilateralness, so the corners end up
// with only boundary exposure. Per this may be a no-op on already
// convex inputs.
func forceCornerOut(s *meshstore.Store, corners [4]meshstore.NodeID) {
	for _, c := range corners {
		for _, e := range s.Nodes[c].Edges() {
			if q, ok := meshops.Quad(s, e); ok && meshops.IsConvexQuad(s, q) {
				_, _, _ = meshops.SwapEdge(s, e)
			}
		}
	}
}
