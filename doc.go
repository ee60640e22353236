// Package cloudpath provides a single path value that can transparently
// represent either a plain hierarchical path or a path bound to a pluggable
// storage backend, so calling code uses one API regardless of where data
// lives.
//
// The package defines three things:
//
//   - PurePath: an immutable, backend-independent path value with pure
//     operations (Join, String, Equal, Base, Dir).
//   - Backend: the storage contract any backend must implement
//     (existence checks, listing, globbing, directory management,
//     deletion, streams, moves). This package never implements storage
//     I/O itself; it only delegates to a Backend.
//   - Path: a PurePath composed with a Backend reference, exposing both
//     pure path navigation and the full backend-delegating operation set.
//
// # Construction
//
// Paths are built through the binding resolver rather than by struct
// literals. Resolve joins a mixed sequence of components (plain Fragment
// strings, PurePath values, already-bound Path values) and determines
// which backend, if any, the result carries: the backend of the first
// bound component wins. ResolveWith names the backend explicitly, which
// overrides anything discoverable from the components:
//
//	backend := billyfs.NewMemory()
//	p := cloudpath.ResolveWith(backend, cloudpath.Fragment("/data"), cloudpath.Fragment("reports"))
//	err := p.WriteText("hello")
//
//	r := cloudpath.Resolve(cloudpath.Fragment("/local/only"))
//	r.IsBound() // false; only pure operations are available
//
// A Resolved value is the discriminated result of resolution: Pure always
// returns the joined PurePath, while Path returns the bound Path or
// ErrNoBackend when no backend resolved. An unbound path never silently
// pretends to support storage operations.
//
// # Delegation
//
// Every storage-touching method on Path forwards the path's joined string
// form to the bound Backend. Calls are synchronous and blocking; nothing
// is cached, retried, or timed out, and backend failures propagate to the
// caller unmodified. The only two translations the core ever performs are
// the synthesized ErrExist from Mkdir's existence pre-check and the
// optional swallowing of ErrNotExist in Remove(missingOk).
//
// # Backend Implementations
//
// This package contains only the contract. Concrete adapters live in
// separate packages:
//
//   - github.com/joshicola/cloud-path/billyfs - go-billy-backed local and
//     in-memory backends
//   - github.com/joshicola/cloud-path/miniofs - MinIO/S3-compatible object
//     storage backend
//
// The backendtest package provides a conformance suite for validating
// third-party Backend implementations.
package cloudpath
