// Package screen holds the rendering options of a game screen and the
// settings derived from them.
//
// Options are immutable and built with OptionsBuilder. A Config combines
// them with the screen size, title and v-sync, and derives the context
// hints, the projection matrix, the frustum filter and the WebGPU pipeline
// state a renderer needs.
package screen
