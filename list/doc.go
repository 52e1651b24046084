// Package list provides singly, doubly, and circular linked lists. Interior
// nodes are private; the lists expose values, not node objects, so links can
// never be rewired from outside into an inconsistent shape.
//
// Circular is singly linked with the tail pointing back at the head;
// traversal helpers stop after one full cycle.
package list
