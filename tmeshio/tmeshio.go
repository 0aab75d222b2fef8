// Package tmeshio reads and writes the plain-text trimesh snapshot
// format: a header line, an optional six-value transform baseline, node
// count/edge count/triangle count, then one line per node, edge and
// triangle. Grounded on the teacher's mesh.Save/mesh.Load (os.Create/
// os.Open plus an encode/decode round trip), but using bufio.Scanner and
// strconv instead of encoding/json since the format itself is a fixed
// whitespace-delimited text layout, not JSON.
package tmeshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iceisfun/trimesh/meshstore"
)

const header = "!TXT_TMESH 1.00"

// Baseline is the optional six-value transform baseline carried on the
// second line of a snapshot. Used is false when the source mesh had no
// baseline set, in which case Values is the zero vector.
type Baseline struct {
	Used   bool
	Values [6]float64
}

// Save writes s to filename in the text trimesh format.
func Save(filename string, s *meshstore.Store, base Baseline) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, s, base)
}

// Write encodes s to w in the text trimesh format. Tombstoned nodes,
// edges and triangles are skipped and IDs are renumbered densely so the
// file never describes deleted elements.
func Write(w io.Writer, s *meshstore.Store, base Baseline) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}

	used := 0
	if base.Used {
		used = 1
	}
	if _, err := fmt.Fprintf(bw, "%d %s\n", used, formatFloats(base.Values[:])); err != nil {
		return err
	}

	nodeID := make([]int, len(s.Nodes))
	n := 0
	for i := range s.Nodes {
		if s.Nodes[i].Deleted {
			nodeID[i] = -1
			continue
		}
		nodeID[i] = n
		n++
	}

	edgeID := make([]int, len(s.Edges))
	e := 0
	for i := range s.Edges {
		if s.Edges[i].Deleted {
			edgeID[i] = -1
			continue
		}
		edgeID[i] = e
		e++
	}

	triID := make([]int, len(s.Triangles))
	tri := 0
	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			triID[i] = -1
			continue
		}
		triID[i] = tri
		tri++
	}

	if _, err := fmt.Fprintf(bw, "%d %d %d\n", n, e, tri); err != nil {
		return err
	}

	for i := range s.Nodes {
		if s.Nodes[i].Deleted {
			continue
		}
		node := &s.Nodes[i]
		if _, err := fmt.Fprintf(bw, "%s %s %s %d\n", strconv.FormatFloat(node.X, 'g', -1, 64),
			strconv.FormatFloat(node.Y, 'g', -1, 64), strconv.FormatFloat(node.Z, 'g', -1, 64), int(node.Flag)); err != nil {
			return err
		}
	}

	for i := range s.Edges {
		if s.Edges[i].Deleted {
			continue
		}
		edge := &s.Edges[i]
		t1, t2 := -1, -1
		if edge.Tri1.IsValid() {
			t1 = triID[edge.Tri1]
		}
		if edge.Tri2.IsValid() {
			t2 = triID[edge.Tri2]
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n", nodeID[edge.Node1], nodeID[edge.Node2], t1, t2, int(edge.Flag)); err != nil {
			return err
		}
	}

	for i := range s.Triangles {
		t := &s.Triangles[i]
		if t.Deleted {
			continue
		}
		edges := t.Edges()
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", edgeID[edges[0]], edgeID[edges[1]], edgeID[edges[2]], t.Flag); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// Load reads a mesh previously written by Save.
func Load(filename string) (*meshstore.Store, Baseline, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Baseline{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a mesh from r in the text trimesh format. Triangle
// references to t1/t2 are resolved after every triangle line has been
// read, since an edge's triangle indices may refer to a triangle that
// appears later in the file.
func Read(r io.Reader) (*meshstore.Store, Baseline, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, Baseline{}, io.ErrUnexpectedEOF
	}
	if strings.TrimSpace(sc.Text()) != header {
		return nil, Baseline{}, fmt.Errorf("tmeshio: missing %q header", header)
	}

	if !sc.Scan() {
		return nil, Baseline{}, io.ErrUnexpectedEOF
	}
	baseFields := strings.Fields(sc.Text())
	if len(baseFields) < 7 {
		return nil, Baseline{}, fmt.Errorf("tmeshio: malformed baseline line")
	}
	var base Baseline
	usedVal, err := strconv.Atoi(baseFields[0])
	if err != nil {
		return nil, Baseline{}, fmt.Errorf("tmeshio: baseline flag: %w", err)
	}
	base.Used = usedVal != 0
	for i := 0; i < 6; i++ {
		v, err := strconv.ParseFloat(baseFields[i+1], 64)
		if err != nil {
			return nil, Baseline{}, fmt.Errorf("tmeshio: baseline value %d: %w", i, err)
		}
		base.Values[i] = v
	}

	if !sc.Scan() {
		return nil, Baseline{}, io.ErrUnexpectedEOF
	}
	countFields := strings.Fields(sc.Text())
	if len(countFields) != 3 {
		return nil, Baseline{}, fmt.Errorf("tmeshio: malformed count line")
	}
	numNodes, err := strconv.Atoi(countFields[0])
	if err != nil {
		return nil, Baseline{}, fmt.Errorf("tmeshio: node count: %w", err)
	}
	numEdges, err := strconv.Atoi(countFields[1])
	if err != nil {
		return nil, Baseline{}, fmt.Errorf("tmeshio: edge count: %w", err)
	}
	numTris, err := strconv.Atoi(countFields[2])
	if err != nil {
		return nil, Baseline{}, fmt.Errorf("tmeshio: triangle count: %w", err)
	}

	s := meshstore.New()

	for i := 0; i < numNodes; i++ {
		if !sc.Scan() {
			return nil, Baseline{}, fmt.Errorf("tmeshio: expected %d nodes, ran out at %d", numNodes, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, Baseline{}, fmt.Errorf("tmeshio: malformed node line %d", i)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, Baseline{}, fmt.Errorf("tmeshio: node %d x: %w", i, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, Baseline{}, fmt.Errorf("tmeshio: node %d y: %w", i, err)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, Baseline{}, fmt.Errorf("tmeshio: node %d z: %w", i, err)
		}
		flag, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, Baseline{}, fmt.Errorf("tmeshio: node %d flag: %w", i, err)
		}
		s.AddNode(x, y, z, meshstore.ConstraintFlag(flag))
	}

	type rawEdge struct {
		n1, n2 int
		t1, t2 int
		flag   int
	}
	rawEdges := make([]rawEdge, numEdges)
	for i := 0; i < numEdges; i++ {
		if !sc.Scan() {
			return nil, Baseline{}, fmt.Errorf("tmeshio: expected %d edges, ran out at %d", numEdges, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 5 {
			return nil, Baseline{}, fmt.Errorf("tmeshio: malformed edge line %d", i)
		}
		vals := make([]int, 5)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, Baseline{}, fmt.Errorf("tmeshio: edge %d field %d: %w", i, j, err)
			}
			vals[j] = v
		}
		rawEdges[i] = rawEdge{n1: vals[0], n2: vals[1], t1: vals[2], t2: vals[3], flag: vals[4]}
		s.AddEdge(meshstore.NodeID(vals[0]), meshstore.NodeID(vals[1]), meshstore.NilTri, meshstore.NilTri, meshstore.ConstraintFlag(vals[4]))
	}

	for i := 0; i < numTris; i++ {
		if !sc.Scan() {
			return nil, Baseline{}, fmt.Errorf("tmeshio: expected %d triangles, ran out at %d", numTris, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, Baseline{}, fmt.Errorf("tmeshio: malformed triangle line %d", i)
		}
		vals := make([]int, 4)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, Baseline{}, fmt.Errorf("tmeshio: triangle %d field %d: %w", i, j, err)
			}
			vals[j] = v
		}
		s.AddTriangle(meshstore.EdgeID(vals[0]), meshstore.EdgeID(vals[1]), meshstore.EdgeID(vals[2]), vals[3])
	}

	for i, re := range rawEdges {
		edge := &s.Edges[i]
		if re.t1 >= 0 {
			edge.Tri1 = meshstore.TriID(re.t1)
		}
		if re.t2 >= 0 {
			edge.Tri2 = meshstore.TriID(re.t2)
		}
		edge.OnBorder = edge.Tri2 == meshstore.NilTri
	}

	if err := sc.Err(); err != nil {
		return nil, Baseline{}, err
	}

	return s, base, nil
}
