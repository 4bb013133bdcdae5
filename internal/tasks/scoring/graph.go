package scoring

import "smart-task-planner/internal/model"

// depGraph holds the dependency structure of one batch.
type depGraph struct {
	deps       map[string][]string // task id -> its dependency ids
	dependents map[string]int      // task id -> how many tasks depend on it
	missing    map[string]int      // task id -> deps referenced but absent from the batch
}

// buildGraph indexes dependencies for a batch. Task ids are assumed
// assigned and unique (validation happens before scoring).
func buildGraph(batch []model.Task) depGraph {
	g := depGraph{
		deps:       make(map[string][]string, len(batch)),
		dependents: make(map[string]int, len(batch)),
		missing:    make(map[string]int),
	}

	present := make(map[string]bool, len(batch))
	for _, t := range batch {
		present[t.ID] = true
		g.deps[t.ID] = t.Dependencies
	}

	for _, t := range batch {
		for _, d := range t.Dependencies {
			if !present[d] {
				g.missing[t.ID]++
				continue
			}
			g.dependents[d]++
		}
	}

	return g
}

// cycleNodes runs a DFS over the dependency edges and returns the ids
// involved in any cycle.
func (g depGraph) cycleNodes() map[string]bool {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	inCycle := make(map[string]bool)

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		onStack[node] = true
		for _, neigh := range g.deps[node] {
			if _, known := g.deps[neigh]; !known {
				continue // missing dep, counted separately
			}
			if !visited[neigh] {
				dfs(neigh)
			} else if onStack[neigh] {
				inCycle[node] = true
				inCycle[neigh] = true
			}
		}
		delete(onStack, node)
	}

	for node := range g.deps {
		if !visited[node] {
			dfs(node)
		}
	}

	return inCycle
}
