package path

import "fmt"

// Comparator orders two paths for ranked output. It returns a negative
// number if a should rank before b, zero if they rank equal, and a positive
// number if a should rank after b — the same convention as cmp.Compare, so
// callers sort with sort.SliceStable(ps, func(i, j int) bool { return
// comparator(ps[i], ps[j]) < 0 }).
type Comparator func(a, b *Path) int

// Kind enumerates the named path-ranking criteria. The zero value is
// ByPathWeight.
type Kind int8

const (
	ByPathWeight Kind = iota
	ByMaxEdgeWeight
	ByAvgEdgeWeight
	ByMinEdgeWeight
	ByMaxEdgeUse
	ByAvgEdgeUse
	ByMinEdgeUse
	ByMaxVertexDegree
	ByAvgVertexDegree
	ByMinVertexDegree
)

func (k Kind) String() string {
	switch k {
	case ByPathWeight:
		return "pathWeight"
	case ByMaxEdgeWeight:
		return "maxEdgeWeight"
	case ByAvgEdgeWeight:
		return "avgEdgeWeight"
	case ByMinEdgeWeight:
		return "minEdgeWeight"
	case ByMaxEdgeUse:
		return "maxEdgeUse"
	case ByAvgEdgeUse:
		return "avgEdgeUse"
	case ByMinEdgeUse:
		return "minEdgeUse"
	case ByMaxVertexDegree:
		return "maxVertexDegree"
	case ByAvgVertexDegree:
		return "avgVertexDegree"
	case ByMinVertexDegree:
		return "minVertexDegree"
	default:
		return "invalid"
	}
}

var keyFuncs = map[Kind]func(p *Path) float64{
	ByPathWeight:      (*Path).Weight,
	ByMaxEdgeWeight:   (*Path).MaxEdgeWeight,
	ByAvgEdgeWeight:   (*Path).AvgEdgeWeight,
	ByMinEdgeWeight:   (*Path).MinEdgeWeight,
	ByMaxEdgeUse:      func(p *Path) float64 { return float64(p.MaxEdgeUse()) },
	ByAvgEdgeUse:      (*Path).AvgEdgeUse,
	ByMinEdgeUse:      func(p *Path) float64 { return float64(p.MinEdgeUse()) },
	ByMaxVertexDegree: func(p *Path) float64 { return float64(p.MaxDegree()) },
	ByAvgVertexDegree: (*Path).AvgDegree,
	ByMinVertexDegree: func(p *Path) float64 { return float64(p.MinDegree()) },
}

var namesToKind = map[string]Kind{
	"pathWeight":      ByPathWeight,
	"maxEdgeWeight":   ByMaxEdgeWeight,
	"avgEdgeWeight":   ByAvgEdgeWeight,
	"minEdgeWeight":   ByMinEdgeWeight,
	"maxEdgeUse":      ByMaxEdgeUse,
	"avgEdgeUse":      ByAvgEdgeUse,
	"minEdgeUse":      ByMinEdgeUse,
	"maxVertexDegree": ByMaxVertexDegree,
	"avgVertexDegree": ByAvgVertexDegree,
	"minVertexDegree": ByMinVertexDegree,
}

// ParseKind resolves a comparator name (as it appears in config or a CLI
// flag) to its Kind. Returns ErrUnknownComparator for anything else.
func ParseKind(name string) (Kind, error) {
	k, ok := namesToKind[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownComparator, name)
	}
	return k, nil
}

// Comparator returns the ranking function for this Kind: descending by the
// chosen metric, ties broken by descending Weight(). NaN never appears
// because every underlying metric is a ratio or count over a nonempty,
// finite path.
func (k Kind) Comparator() Comparator {
	key := keyFuncs[k]
	return func(a, b *Path) int {
		if d := key(b) - key(a); d != 0 {
			return sign(d)
		}
		if d := b.Weight() - a.Weight(); d != 0 {
			return sign(d)
		}
		return 0
	}
}

// ComparatorFor resolves a comparator name directly to a ranking function.
func ComparatorFor(name string) (Comparator, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return k.Comparator(), nil
}

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
