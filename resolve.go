package cloudpath

// Component is a path component accepted by the binding resolver. The
// implementations are Fragment, PurePath, and Path; the set is closed so
// resolution stays statically checkable.
type Component interface {
	componentPath() string
	componentBackend() Backend
}

// Fragment is a plain string path segment.
type Fragment string

func (f Fragment) componentPath() string     { return string(f) }
func (f Fragment) componentBackend() Backend { return nil }

// Resolved is the discriminated result of binding resolution: a joined
// PurePath plus the backend, if any, the components carried.
type Resolved struct {
	pure    PurePath
	backend Backend
}

// Resolve joins the given components into a single path and determines
// which backend the result carries. The backend of the first bound Path
// among the components is selected; if no component is bound, the result
// is unbound and exposes only pure operations.
func Resolve(components ...Component) Resolved {
	elems := make([]string, len(components))
	var backend Backend
	for i, c := range components {
		elems[i] = c.componentPath()
		if backend == nil {
			backend = c.componentBackend()
		}
	}
	return Resolved{pure: NewPure(elems...), backend: backend}
}

// ResolveWith joins the given components like Resolve but binds the
// result to the explicitly named backend, which overrides any backend
// carried by the components. It replaces the convenience form of passing
// a backend as the trailing construction argument.
func ResolveWith(backend Backend, components ...Component) Path {
	r := Resolve(components...)
	return Path{pure: r.pure, backend: backend}
}

// IsBound reports whether a backend resolved.
func (r Resolved) IsBound() bool {
	return r.backend != nil
}

// Pure returns the joined path value.
func (r Resolved) Pure() PurePath {
	return r.pure
}

// Path returns the bound path. It fails with ErrNoBackend when no
// backend resolved; an unbound result never silently behaves as local.
func (r Resolved) Path() (Path, error) {
	if r.backend == nil {
		return Path{}, ErrNoBackend
	}
	return Path{pure: r.pure, backend: r.backend}, nil
}
