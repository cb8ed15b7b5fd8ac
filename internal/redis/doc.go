// Package redis provides Redis connectivity and the app repository.
//
// The repository owns the wire representation of apps and the ID counter:
// apps live under app:<id> as JSON documents tagged with an entityType
// discriminator, the counter is a bare integer under a reserved key. All
// write-consistency guarantees come from store-side primitives (SET NX, DEL,
// INCR), never from in-process locking.
package redis
