// Package billyfs provides a go-billy-backed implementation of the
// cloudpath.Backend contract, covering local disk (osfs) and in-memory
// (memfs) storage.
//
// Usage:
//
//	backend := billyfs.NewMemory()
//	p := cloudpath.ResolveWith(backend, cloudpath.Fragment("/data/report.txt"))
//	err := p.WriteText("hello")
//
// Local backends are rooted: every path handed to the backend resolves
// inside the root directory given to NewLocal, which keeps callers from
// escaping the tree they were handed.
//
// Glob patterns use path.Match per segment. A pattern segment of "**"
// matches any number of segments, so "logs/**" matches the whole subtree
// under logs.
//
// The Unwrap method exposes the underlying billy.Filesystem for go-git
// integration.
package billyfs
