// Package grid provides grid-space geometry for board layouts.
//
// Boards measure everything in abstract grid units. The rendering layer works
// in pixels, so this package holds both coordinate systems and the conversion
// between them:
//
//   - [Rect]: a rectangle in grid units
//   - [PixelRect], [PixelPoint]: rectangles and points in pixels
//   - [Converter]: pixel ↔ grid conversion for a fixed cell size
//
// # Rounding
//
// Pixel values are rounded to the nearest cell, half up (toward +∞). A 15px
// offset on a 10px grid becomes 2 units; -15px becomes -1.
//
// # Collision
//
// [IntersectsWithMargin] treats two rectangles as colliding when the gap
// between them is smaller than the margin. Rectangles separated by exactly
// the margin do not collide, so boxes can sit edge to edge on a zero-margin
// board.
package grid
