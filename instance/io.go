package instance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/segcolor/geom"
)

// TypeName is the "type" tag of instance documents.
const TypeName = "Instance_CGSHOP2022"

// document is the CG:SHOP 2022 instance layout.
type document struct {
	Type  string  `json:"type"`
	ID    string  `json:"id"`
	N     int     `json:"n"`
	M     int     `json:"m"`
	X     []int64 `json:"x"`
	Y     []int64 `json:"y"`
	EdgeI []int   `json:"edge_i"`
	EdgeJ []int   `json:"edge_j"`
}

// Decode reads a JSON instance description.
func Decode(r io.Reader, opts ...Option) (*Instance, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.X) != doc.N || len(doc.Y) != doc.N {
		return nil, fmt.Errorf("%w: n=%d but %d x and %d y", ErrMalformed, doc.N, len(doc.X), len(doc.Y))
	}
	if len(doc.EdgeI) != doc.M || len(doc.EdgeJ) != doc.M {
		return nil, fmt.Errorf("%w: m=%d but %d edge_i and %d edge_j", ErrMalformed, doc.M, len(doc.EdgeI), len(doc.EdgeJ))
	}
	points := make([]geom.Point, doc.N)
	for i := range points {
		points[i] = geom.Pt(doc.X[i], doc.Y[i])
	}
	edges := make([]Edge, doc.M)
	for i := range edges {
		edges[i] = Edge{U: doc.EdgeI[i], V: doc.EdgeJ[i]}
	}

	return New(doc.ID, doc.N, points, edges, opts...)
}

// Load reads a JSON instance file.
func Load(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	ins, err := Decode(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", path, err)
	}

	return ins, nil
}

// Encode writes a geometric instance as JSON.
func (ins *Instance) Encode(w io.Writer) error {
	if !ins.geometric {
		return fmt.Errorf("%w: abstract instance has no JSON form", ErrMalformed)
	}
	doc := document{
		Type:  TypeName,
		ID:    ins.id,
		N:     len(ins.points),
		M:     ins.m,
		X:     make([]int64, len(ins.points)),
		Y:     make([]int64, len(ins.points)),
		EdgeI: make([]int, ins.m),
		EdgeJ: make([]int, ins.m),
	}
	for i, p := range ins.points {
		doc.X[i], doc.Y[i] = p.X, p.Y
	}
	for i, e := range ins.edges {
		doc.EdgeI[i], doc.EdgeJ[i] = e.U, e.V
	}

	return json.NewEncoder(w).Encode(doc)
}

// DecodeDIMACS reads a DIMACS edge list. Lines "e u v" (1-indexed) declare a
// conflict between items u-1 and v-1; "p edge V E" sets the item count,
// which otherwise is the largest index seen. Comment and unknown lines are
// skipped.
func DecodeDIMACS(r io.Reader, id string) (*Instance, error) {
	var (
		pairs [][2]int
		m     int
		line  int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case "p":
			if len(f) < 3 {
				return nil, fmt.Errorf("%w: line %d: short problem line", ErrMalformed, line)
			}
			v, err := strconv.Atoi(f[2])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: bad vertex count %q", ErrMalformed, line, f[2])
			}
			m = max(m, v)
		case "e":
			if len(f) < 3 {
				return nil, fmt.Errorf("%w: line %d: short edge line", ErrMalformed, line)
			}
			u, err1 := strconv.Atoi(f[1])
			v, err2 := strconv.Atoi(f[2])
			if err1 != nil || err2 != nil || u < 1 || v < 1 {
				return nil, fmt.Errorf("%w: line %d: bad edge %q", ErrMalformed, line, sc.Text())
			}
			if u == v {
				continue
			}
			pairs = append(pairs, [2]int{u - 1, v - 1})
			m = max(m, u, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return NewAbstract(id, m, pairs)
}

// LoadDIMACS reads a DIMACS file; the instance id is the file name.
func LoadDIMACS(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	ins, err := DecodeDIMACS(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("instance: %s: %w", path, err)
	}

	return ins, nil
}
