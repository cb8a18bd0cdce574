package engine

// System is one simulation pass over the world. Systems run sequentially
// in ascending priority order within a tick; ordering between them is
// load-bearing (the index build must complete before any resolution
// system reads it).
type System interface {
	Update()
	Priority() int
}

// sortSystems orders a system list by ascending priority. Insertion sort,
// small N, run once at setup.
func sortSystems(systems []System) {
	for i := 1; i < len(systems); i++ {
		for j := i; j > 0 && systems[j-1].Priority() > systems[j].Priority(); j-- {
			systems[j-1], systems[j] = systems[j], systems[j-1]
		}
	}
}
