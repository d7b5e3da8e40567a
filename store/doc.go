// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the device's current trip handle.

The store is a single sqlite file holding one row: the id of the trip the
device currently has open. Get returns "" when no trip is saved; Save
replaces the previous value. Clearing the handle is an explicit external
action and is not part of this store's surface.

	s, err := store.Open(cfg.DatabasePath)
	...
	tripID, err := s.Get(ctx)
*/
package store
