// Package motif builds the decorative layouts a content site draws around its
// pages: scattered dot fields, variant tiles and rotating hero visuals.
//
// Every function takes a stable key, usually a route or a content slug, and
// creates its own stablerand.Generator from it. Draws are made in a fixed order
// so that the same key always yields the same layout, whichever process renders
// it. No generator is shared between calls.
package motif
