package engine

import "errors"

// ErrCode mirrors the scalar error codes embeds in return
// values alongside a Go error, for callers (tmeshio, cmd/trimesh) that
// need the legacy numeric contract without re-deriving it from err.
type ErrCode int

const (
	ErrNone ErrCode = iota
	ErrAlloc
	ErrBadArgCount
	ErrDegenerate
	ErrBadGridDims
)

// Result is the outcome of a public engine operation: Go error for
// callers that want idiomatic handling, plus the numeric Code/Changed
// pair for callers that want the original success(1)/no-op(0)/failure(-1)
// contract.
type Result struct {
	Changed bool
	Code    ErrCode
	Err     error
}

// OK builds a successful, state-changing result.
func OK() Result { return Result{Changed: true, Code: ErrNone} }

// NoOp builds a successful result that changed nothing.
func NoOp() Result { return Result{Changed: false, Code: ErrNone} }

// Fail builds a failure result carrying both the numeric code and the Go
// error that explains it.
func Fail(code ErrCode, err error) Result { return Result{Code: code, Err: err} }

var (
	ErrEmptyInput     = errors.New("engine: empty input")
	ErrBadArgCounts   = errors.New("engine: mismatched array lengths")
	ErrNoMesh         = errors.New("engine: no mesh built yet")
	ErrOperationInUse = errors.New("engine: another operation is already in progress on this engine instance")
)
