package ioformat

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/maxedgeorient/meo/core"
)

// edgesGrammar is the root production: zero or more edge lines.
type edgesGrammar struct {
	Lines []*edgeLine `@@*`
}

// edgeLine is one "name1 TYPE name2 = weight" production.
type edgeLine struct {
	Name1  string `@Ident`
	Kind   string `"(" @("pp" | "pd") ")"`
	Name2  string `@Ident`
	Weight string `"=" @(Float|Int)`
}

var edgesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[()=]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var edgesParser = participle.MustBuild[edgesGrammar](
	participle.Lexer(edgesLexer),
	participle.Elide("Whitespace"),
)

// ParseEdges reads an edges file from r, registering every mentioned
// vertex (auto-registered with node-weight 1 on first mention, per
// core.Graph.AddVertex) and adding one directed or undirected edge per
// line to g.
func ParseEdges(r io.Reader, g *core.Graph) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("ioformat: read edges: %w", err)
	}

	parsed, err := edgesParser.ParseBytes("", data)
	if err != nil {
		return fmt.Errorf("ioformat: parse edges: %w", err)
	}

	for i, line := range parsed.Lines {
		if err := applyEdgeLine(g, line); err != nil {
			return fmt.Errorf("ioformat: edges line %d: %w", i+1, err)
		}
	}
	return nil
}

func applyEdgeLine(g *core.Graph, line *edgeLine) error {
	weight, err := strconv.ParseFloat(line.Weight, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadEdgeWeight, line.Weight)
	}
	if weight <= 0 || weight > 1 {
		return ErrBadEdgeWeight
	}

	a, err := g.AddVertex(line.Name1, 1)
	if err != nil {
		return err
	}
	b, err := g.AddVertex(line.Name2, 1)
	if err != nil {
		return err
	}

	switch line.Kind {
	case "pp":
		_, err = g.AddUndirectedEdge(a, b, weight)
	case "pd":
		_, err = g.AddDirectedEdge(a, b, weight)
	default:
		return fmt.Errorf("%w: %q", ErrBadEdgeType, line.Kind)
	}
	return err
}
