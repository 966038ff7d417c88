package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/path"
)

// WritePathOutput writes the path.output.file report: header
// "Path\tIs satisfied?\tPath weight", then one line per path — colon
// joined vertex names, a boolean, and the path's maximum weight.
func WritePathOutput(w io.Writer, paths []*path.Path) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Path\tIs satisfied?\tPath weight")
	for _, p := range paths {
		fmt.Fprintf(bw, "%s\t%t\t%s\n",
			strings.Join(p.VertexNames(), ":"),
			p.IsSatisfied(),
			strconv.FormatFloat(p.MaxWeight(), 'g', -1, 64))
	}
	return bw.Flush()
}

// WriteEdgeOutput writes the edge.output.file report: header
// "Source\tType\tTarget\tOriented\tWeight", directed edges first (always
// "pd", always oriented), then undirected edges (type "pp", oriented if
// fixed or currently given a direction), restricted to edges present in
// the used set (typically engine.Engine.PathEdges()).
func WriteEdgeOutput(w io.Writer, g *core.Graph, used map[core.Edge]struct{}) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Source\tType\tTarget\tOriented\tWeight")

	for _, e := range g.DirectedEdges() {
		if _, ok := used[e]; !ok {
			continue
		}
		from, to := e.Endpoints()
		fmt.Fprintf(bw, "%s\tpd\t%s\ttrue\t%s\n",
			g.Vertex(from).Name(), g.Vertex(to).Name(),
			strconv.FormatFloat(e.Weight(), 'g', -1, 64))
	}
	for _, e := range g.UndirectedEdges() {
		if _, ok := used[e]; !ok {
			continue
		}
		a, b := e.Endpoints()
		fmt.Fprintf(bw, "%s\tpp\t%s\t%t\t%s\n",
			g.Vertex(a).Name(), g.Vertex(b).Name(),
			e.Orientation().IsOriented(),
			strconv.FormatFloat(e.Weight(), 'g', -1, 64))
	}
	return bw.Flush()
}
