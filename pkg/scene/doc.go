// Package scene defines the node element tree built during an import.
// A session produces one owning tree of typed nodes plus a flat,
// insertion-ordered registry that backs the DEF/USE reuse mechanism.
package scene
