// Package tilemap models a fixed-size 2D tile grid and its coordinate system.
//
// What:
//
//   - Tile classifies a cell as Wall or Floor.
//   - Grid is an immutable, row-major dense array of tiles with Width and Height.
//   - Position is a linear row-major index; Point is the (X, Y) coordinate.
//     Index and Point convert between them exactly (integer division/modulo by Width).
//   - Builder is the only way to mutate tiles; it hands out immutable Grid snapshots.
//   - Rect describes axis-aligned rooms used by the dungeon generator.
//   - Directions derives the 8 compass offsets; Neighbor applies one with bounds checks.
//   - Region and Regions flood-fill connected Floor areas (8-connectivity).
//
// Why:
//
//   - Search and generation share one indexing model, so a Position computed by
//     one package is always valid in the other.
//   - A Grid never changes after it is built, so any number of searches may
//     read it concurrently without locking.
//
// Complexity:
//
//   - Index, Point, InBounds, TileAt, Neighbor: O(1).
//   - Region: O(W×H×8) worst case, Memory: O(W×H).
//   - Regions: O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrDimensionMismatch: tile slice length differs from width×height, or text rows differ in length.
//   - ErrOutOfBounds: a Position or coordinate lies outside the grid.
//   - ErrUnknownGlyph: Parse met a character that is neither a wall nor a floor glyph.
package tilemap
