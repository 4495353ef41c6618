// Package render turns a codes.Model into the text of a C++ header.
//
// Rendering is a pure function of the model, the provenance label and the
// Options. The same input always yields byte-identical output.
package render
