// Package dungeon synthesizes tile grids by carving rooms and corridors.
//
// Generate starts from a solid Wall canvas and makes up to MaxRooms attempts
// to place a rectangular room. Each candidate has a width and height drawn
// uniformly from [MinRoomSize, MaxRoomSize] and is positioned so it never
// touches the outer border. Candidates that intersect an already placed room
// (shared edges count) are rejected; accepted rooms are carved to Floor and,
// except for the first, joined to the previously placed room by an L-shaped
// corridor whose elbow is picked by a coin flip.
//
// The rooms form a chain: every room is linked to its predecessor, so the
// carved area is connected, but two rooms far apart in the chain are only
// connected through the rooms between them.
//
// Determinism: the output is a pure function of (width, height, seed, options).
// The same inputs always yield the same tiles, which keeps test fixtures stable.
//
// Errors:
//
//   - ErrInvalidGridDimensions: the canvas cannot fit a MaxRoomSize room inside its border.
//   - ErrNoFloor: endpoint selection on a grid without Floor tiles.
//   - ErrNoEndpoints: no pair of Floor tiles far enough apart was found.
package dungeon
