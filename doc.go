// Package gridpath is a grid pathfinding demonstrator: mark a start, an end
// and walls on a rectangular board, then watch BFS, DFS, Dijkstra or A*
// explore it.
//
// The module is organized as:
//
//	grid/            cells, roles, neighbors, per-run search overlay, random obstacles
//	search/          BFS, DFS, Dijkstra, A*; Result; Options; resumable Stepper
//	api/             gin HTTP surface over in-memory grid sessions
//	config/          environment configuration
//	cmd/gridpathd/   service entry point
//
// Quick start:
//
//	g, _ := grid.Parse(`
//		S...
//		.##.
//		...E
//	`)
//	res, _ := search.Run(g, search.AlgorithmAStar)
//	fmt.Println(res.Visited, res.Path)
//
// Every search returns both the order in which cells were expanded and the
// path from start to end, so a front end can animate exploration first and
// the path second. Movement is 4-connected with unit cost.
package gridpath
