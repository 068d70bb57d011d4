// Package renderer turns report structs into markdown for terminal
// display. Renderers only format; all numbers come computed from the
// engine.
package renderer
