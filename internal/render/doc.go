// Package render composites the downloadable greeting image: the card
// artwork stretched to a square canvas, a darkening vertical gradient, the
// word-wrapped greeting in italic, and the studio watermark.
package render
