// Package dungeonpath is a small toolkit for tile-based maps: carve a
// room-and-corridor dungeon from a seed, then find least-cost routes
// across it.
//
// What's inside?
//
//	tilemap/: immutable Grid of Wall/Floor tiles, Builder, 8-neighbour
//	          directions, flood-filled regions
//	dungeon/: seeded room-and-corridor generator, random floor endpoints
//	astar/  : generic A* engine (int or float costs), path
//	          reconstruction, concurrent batch queries
//	render/ : ASCII overlay of a path on a grid, numeric tile dump
//	config/ : YAML run settings for the CLI
//	cmd/dungeonpath: generate → search → print
//
// Quick ASCII example (S start, E end, + path):
//
//	##########
//	#S+   ####
//	#  +  ####
//	####+#####
//	#####+E  #
//	##########
//
// The same seed always yields the same map, and the same map and endpoints
// always yield the same path.
//
//	go run github.com/katalvlaran/dungeonpath/cmd/dungeonpath -seed 42
package dungeonpath
