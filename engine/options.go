package engine

import (
	"log"
	"os"
	"strconv"

	"github.com/iceisfun/trimesh/meshstore"
)

// config holds every engine-instance toggle named in, mirroring
// the teacher's mesh.config/mesh.Option shape (functional options over an
// unexported struct).
type config struct {
	polygonalizeConstraints bool
	chopLines               bool
	removeZeroFlag          bool
	splitLongFlag           bool
	dontDoEquilateral       bool
	organizeLinesFlag       bool
	swapMode                meshstore.SwapMode
	cornerBias              float64

	validateTopology bool    // GRD_VALIDATE_TRIMESH_TOPO
	skinnyMult       float64 // GRD_SKINNY_MULT

	logger *log.Logger
}

func defaultConfig() config {
	c := config{
		removeZeroFlag: true,
		swapMode:       meshstore.SwapAny,
		cornerBias:     4,
		skinnyMult:     1,
		logger:         log.New(os.Stderr, "trimesh: ", log.LstdFlags),
	}
	if v, ok := os.LookupEnv("GRD_VALIDATE_TRIMESH_TOPO"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.validateTopology = b
		}
	}
	if v, ok := os.LookupEnv("GRD_SKINNY_MULT"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.skinnyMult = f
		}
	}
	return c
}

// Option configures an Engine during construction, mirroring the
// teacher's mesh.Option pattern (mesh/options.go).
type Option func(*config)

// WithPolygonalizeConstraints toggles polygonalize_constraints.
func WithPolygonalizeConstraints(enable bool) Option {
	return func(c *config) { c.polygonalizeConstraints = enable }
}

// WithChopLines toggles chop_lines.
func WithChopLines(enable bool) Option {
	return func(c *config) { c.chopLines = enable }
}

// WithRemoveZeroFlag toggles remove_zero_flag, on by default
// since the topology repair pass is meant to run routinely.
func WithRemoveZeroFlag(enable bool) Option {
	return func(c *config) { c.removeZeroFlag = enable }
}

// WithSplitLongFlag toggles split_long_flag.
func WithSplitLongFlag(enable bool) Option {
	return func(c *config) { c.splitLongFlag = enable }
}

// WithoutEquilateral toggles dont_do_equilateral: when set, grid
// conversion uses the cell-diagonal style exclusively.
func WithoutEquilateral(enable bool) Option {
	return func(c *config) { c.dontDoEquilateral = enable }
}

// WithOrganizeLinesFlag toggles organize_lines_flag.
func WithOrganizeLinesFlag(enable bool) Option {
	return func(c *config) { c.organizeLinesFlag = enable }
}

// WithSwapMode sets the edge-swap behaviour used by quality passes.
func WithSwapMode(mode meshstore.SwapMode) Option {
	return func(c *config) { c.swapMode = mode }
}

// WithCornerBias sets the divisor applied to a candidate swap's
// equilateralness when either triangle touches a corner node.
func WithCornerBias(bias float64) Option {
	return func(c *config) {
		if bias >= 1 {
			c.cornerBias = bias
		}
	}
}

// WithLogger overrides the engine's diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
