// Package listutil provides generic helpers for working with Go slices.
//
// It extends the standard library with predicates and boundary accessors
// (IsEmpty, First, Last), sort/search/shuffle delegation, set-style
// operations (Equal, Union, Intersection, Subtract), live slice views
// (Reversed, AsFixed) and a few explicit list containers whose semantics a
// raw slice cannot carry: SortedList, CopyOnWriteList, SyncList,
// LinkedList and the read-only Immutable.
package listutil
