// Package primitives provides the small data structures shared by the core
// packages.
//
// Values is the insertion-ordered map behind property bags and validation
// stores: iteration order is the order keys were first written, which keeps
// ChangedProperties and error listings deterministic.
package primitives
