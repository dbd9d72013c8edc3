// Package importer loads diagram descriptions from TOML or JSON files
// into the neutral form the renderer consumes. The two formats share one
// schema; the file extension picks the decoder.
//
// Semantic problems in an otherwise well-formed file (duplicate ids,
// duplicate positions, unknown edge endpoints, duplicate edges) are not
// fatal: the offending entry is skipped and a warning is collected for
// the caller to report.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"asciidiagrams/diagram"
)

// fileSpec is the on-disk schema, shared by both decoders.
type fileSpec struct {
	HorizontalMargin *int        `json:"horizontal_margin" toml:"horizontal_margin"`
	VerticalMargin   *int        `json:"vertical_margin" toml:"vertical_margin"`
	Padding          *int        `json:"padding" toml:"padding"`
	Blocks           []blockSpec `json:"blocks" toml:"blocks"`
	Edges            []edgeSpec  `json:"edges" toml:"edges"`
}

type blockSpec struct {
	ID       string       `json:"id" toml:"id"`
	Text     *string      `json:"text" toml:"text"`
	Position positionSpec `json:"position" toml:"position"`
}

type positionSpec struct {
	Row    int32 `json:"row" toml:"row"`
	Column int32 `json:"column" toml:"column"`
}

type edgeSpec struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// Result is a loaded diagram: blocks and edges ready for the renderer,
// the file's spacing options merged over the defaults, and the warnings
// produced while skipping bad entries.
type Result struct {
	Blocks   []diagram.Block
	Edges    []diagram.Edge
	Options  diagram.Options
	Warnings []string
}

// Load reads and parses the diagram file at path, dispatching on its
// extension. Valid extensions are .toml and .json.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec fileSpec
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "toml":
		if err := toml.Unmarshal(data, &spec); err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", path)
		}
	case "json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", path)
		}
	default:
		return nil, errors.Errorf("unrecognized diagram format %q, valid extensions: toml, json", ext)
	}

	return convert(&spec)
}

// convert validates the parsed schema and builds the renderer inputs.
func convert(spec *fileSpec) (*Result, error) {
	res := &Result{Options: diagram.DefaultOptions()}

	if spec.HorizontalMargin != nil {
		if *spec.HorizontalMargin < 0 {
			return nil, errors.New("horizontal_margin must be non-negative")
		}
		res.Options.HMargin = *spec.HorizontalMargin
	}
	if spec.VerticalMargin != nil {
		if *spec.VerticalMargin < 0 {
			return nil, errors.New("vertical_margin must be non-negative")
		}
		res.Options.VMargin = *spec.VerticalMargin
	}
	if spec.Padding != nil {
		if *spec.Padding < 0 {
			return nil, errors.New("padding must be non-negative")
		}
		res.Options.Padding = *spec.Padding
	}

	indexByID := make(map[string]int)
	usedPositions := make(map[diagram.LogicalPoint]string)
	for _, bs := range spec.Blocks {
		if bs.Text == nil {
			return nil, errors.New("block is missing required field \"text\"")
		}

		id := bs.ID
		if id == "" {
			id = *bs.Text
		}
		if _, dup := indexByID[id]; dup {
			res.warnf("duplicate block id %q, dropping the later block", id)
			continue
		}

		at := diagram.LogicalPoint{Row: bs.Position.Row, Column: bs.Position.Column}
		if other, dup := usedPositions[at]; dup {
			res.warnf("block %q overlaps block %q at (%d,%d), dropping it", id, other, at.Row, at.Column)
			continue
		}

		indexByID[id] = len(res.Blocks)
		usedPositions[at] = id
		res.Blocks = append(res.Blocks, diagram.NewBlock(at, []byte(*bs.Text)))
	}

	seenEdges := make(map[diagram.Edge]bool)
	for _, es := range spec.Edges {
		from, ok := indexByID[es.From]
		if !ok {
			res.warnf("edge %q -> %q references unknown block %q, skipping it", es.From, es.To, es.From)
			continue
		}
		to, ok := indexByID[es.To]
		if !ok {
			res.warnf("edge %q -> %q references unknown block %q, skipping it", es.From, es.To, es.To)
			continue
		}

		e := diagram.Edge{From: from, To: to}
		if seenEdges[e] || seenEdges[diagram.Edge{From: to, To: from}] {
			res.warnf("duplicate edge %q -> %q, skipping it", es.From, es.To)
			continue
		}
		seenEdges[e] = true
		res.Edges = append(res.Edges, e)
	}

	return res, nil
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
