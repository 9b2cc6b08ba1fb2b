// Package cli provides the command-line interface for stablerand.
//
// Every generator command derives its values from --key, so the same key
// prints the same values on every machine:
//   - seed: Print the seed (and further hash outputs) derived from a key
//   - draw: Draw floats in [0, 1) or raw 32-bit values
//   - int, float: Draw numbers from a range
//   - choice, weighted: Pick items uniformly or by weight
//   - shuffle: Permute items
//   - uuid: Generate version 4 UUIDs
//   - dots: Lay out a dot field, as data or SVG
//   - tiles: Pick tile variants for a grid
//   - rotate: Order or pick hero visuals
//   - config: Show effective configuration and where it came from
//   - version: Show version information
//
// Results go to stdout in text, JSON or YAML (--output). Logs go to stderr.
//
// Usage:
//
//	stablerand seed --key /about
//	stablerand int 1 6 --key dice -n 3
//	stablerand shuffle a b c d --key /work -o json
//	stablerand dots --key /services --svg > dots.svg
package cli
