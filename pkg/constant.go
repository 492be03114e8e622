package pkg

const (
	// INF_DIST is the sentinel distance for unreachable vertex pairs.
	// Configurations are connected in practice, so it only has to dominate
	// any real path length under addition without overflowing.
	INF_DIST = 10000

	// MAX_PATH_EDGES bounds the exhaustive path enumeration between ring
	// vertices. Cycles longer than 7 are never forbidden, so longer internal
	// paths cannot participate in a violating cut.
	MAX_PATH_EDGES = 7

	// MIN_CUT_SIZE and MAX_CUT_SIZE are the separating cycle lengths the
	// minimality assumptions speak about.
	MIN_CUT_SIZE = 6
	MAX_CUT_SIZE = 7
)
