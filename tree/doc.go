// Package tree provides a binary search tree over any ordered value type.
//
// Duplicates are ignored on insert, so the in-order traversal is a strictly
// ascending sequence. Height follows the edge-count convention: an empty
// tree has height -1, a single node height 0.
package tree
