package network

// Unconnected returns the free stations that no chain of observations ties
// to a fixed station, in input order. Such stations make the normal matrix
// singular.
//
// The observation graph has one vertex per station and an undirected edge
// for every from–to pair (and at–from, at–to for angles). A breadth-first
// walk is seeded with every fixed station at depth 0; whatever it does not
// reach is reported. Observations naming unknown stations are ignored.
//
// Complexity: O(V + E).
func Unconnected(stations []Station, obs []Observation) []string {
	index := make(map[string]int, len(stations))
	for i, st := range stations {
		if _, dup := index[st.Name]; !dup {
			index[st.Name] = i
		}
	}

	adj := make([][]int, len(stations))
	link := func(a, b string) {
		i, okA := index[a]
		j, okB := index[b]
		if !okA || !okB || i == j {
			return
		}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}
	for _, o := range obs {
		if o.Kind == KindAngle {
			link(o.At, o.From)
			link(o.At, o.To)
			continue
		}
		link(o.From, o.To)
	}

	visited := make([]bool, len(stations))
	queue := make([]int, 0, len(stations))
	for i, st := range stations {
		if st.Fixed && !visited[i] {
			visited[i] = true
			queue = append(queue, i)
		}
	}
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		for _, nb := range adj[curr] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	var out []string
	for i, st := range stations {
		if !visited[i] && !st.Fixed {
			out = append(out, st.Name)
		}
	}
	return out
}
