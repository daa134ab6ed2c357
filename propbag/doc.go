// Package propbag implements the change-tracking property bag that backs
// model objects.
//
// A Bag stores values by property name, keeps a snapshot of the values
// recorded at the last accept boundary, and raises changing, changed and
// revalidation notifications as values move. Storage is sparse: a property
// springs into existence on its first Set and reads as NotSet until then.
//
// # Change tracking
//
// AcceptChanges makes the current values the new baseline. RejectChanges
// restores it, removing properties created since and raising changing and
// changed notifications for each restored or removed name. IsChangedLocal
// covers the bag's own values; IsChangedGraph asks each stored value that
// implements Changeable. IsChanged is their union.
//
// # Children
//
// A stored value implementing Changeable together with WeakNotifier (or
// Notifier) is a child. The bag listens for the child's IsChanged
// notification and re-raises its own. The weak path is preferred so that a
// child outliving its parent's interest does not keep the parent reachable.
//
// # Metadata
//
// With a metadata.Provider the bag fixes name casing on request and raises a
// changed notification for every calculated property naming a changed source.
// Calculated values are never cached here; owners recompute them on read.
//
// A Bag belongs to one owner and is not safe for concurrent use.
// Notification handlers must not mutate the same bag re-entrantly in ways
// that loop forever; no cycle detection is performed.
package propbag
