// Package iotext implements the two-file whitespace-delimited text format
// used for both training-graph input and generated-graph output: an edges
// file (one undirected edge per line) and a labels file (one node-label pair
// per line), each allowing "#" or "//" trailing comments.
package iotext
