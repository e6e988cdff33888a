// Package pools detects disjoint competitive pools. Ratings are only
// mutually comparable when every player is connected, directly or
// transitively, to every other through shared games; a second pool
// means its internal ranking has no defined relation to the rest.
package pools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/model"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
)

// Partitioner builds the teammate/opponent graph incrementally with a
// union-find structure. Fresh instance per run; discarded afterwards.
type Partitioner struct {
	parent map[string]string
	size   map[string]int
}

// New creates an empty Partitioner.
func New() *Partitioner {
	return &Partitioner{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

// Observe adds one game's edges: teammate-teammate on both sides and
// all four cross opponent pairs. Forfeited games contribute nothing.
// Order of observation does not matter.
func (p *Partitioner) Observe(g model.Game) {
	if g.Forfeited() {
		return
	}

	p.union(g.Team1.Player1, g.Team1.Player2)
	p.union(g.Team2.Player1, g.Team2.Player2)
	p.union(g.Team1.Player1, g.Team2.Player1)
	p.union(g.Team1.Player1, g.Team2.Player2)
	p.union(g.Team1.Player2, g.Team2.Player1)
	p.union(g.Team1.Player2, g.Team2.Player2)
}

// Pools returns the connected components, largest first (ties broken by
// first member name), members sorted alphabetically. An empty game set
// yields zero pools.
func (p *Partitioner) Pools() []types.Pool {
	members := make(map[string][]string)
	for player := range p.parent {
		root := p.find(player)
		members[root] = append(members[root], player)
	}

	out := make([]types.Pool, 0, len(members))
	for _, players := range members {
		sort.Strings(players)
		out = append(out, types.Pool{Players: players})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size() != out[j].Size() {
			return out[i].Size() > out[j].Size()
		}
		return out[i].Players[0] < out[j].Players[0]
	})
	return out
}

// Report renders the textual pool report.
func Report(pools []types.Pool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d disconnected player pools.\n", len(pools))
	for i, pool := range pools {
		fmt.Fprintf(&b, "Pool %d - %d players:\n", i+1, pool.Size())
		b.WriteString(strings.Join(pool.Players, ", "))
		b.WriteString("\n\n")
	}
	return b.String()
}

// find returns the component root with path compression, registering
// unseen players as their own singleton component.
func (p *Partitioner) find(player string) string {
	if _, ok := p.parent[player]; !ok {
		p.parent[player] = player
		p.size[player] = 1
		return player
	}
	root := player
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[player] != root {
		p.parent[player], player = root, p.parent[player]
	}
	return root
}

// union merges the components of a and b, smaller onto larger.
func (p *Partitioner) union(a, b string) {
	ra, rb := p.find(a), p.find(b)
	if ra == rb {
		return
	}
	if p.size[ra] < p.size[rb] {
		ra, rb = rb, ra
	}
	p.parent[rb] = ra
	p.size[ra] += p.size[rb]
}
