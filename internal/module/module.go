// Package module implements the module-resolver external collaborator the
// kernel is driven by: it maps a file identity to a Module
// value carrying the search-path classification (is_standard_library) and
// display name the kernel's Module(file) type form and KnownClass detection
// need, without parsing or evaluating anything.
package module

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Module is the resolver's view of one file: enough identity for the kernel
// to intern a Module(file) type and classify its names as stdlib or not.
type Module struct {
	// Identity is the canonical path used as the interning key.
	Identity string

	// FilePath is the absolute, platform-normalized file path.
	FilePath string

	// Name is the dotted module name (e.g. "builtins", "types", "_typeshed",
	// or a project-relative name like "pkg.models").
	Name string

	// StdlibRoot is the search-path root this module was found under, or ""
	// if it was not resolved from a standard-library root.
	StdlibRoot string
}

// IsStandardLibrary reports whether the module was resolved from one of the
// roots registered as standard-library search paths. KnownClass detection
// is keyed off this plus Name.
func (m *Module) IsStandardLibrary() bool {
	return m.StdlibRoot != ""
}

// IsKnownClassModule reports whether this module is one of the three module
// names the kernel special-cases for KnownClass/KnownFunction recognition.
func (m *Module) IsKnownClassModule() bool {
	if !m.IsStandardLibrary() {
		return false
	}
	switch m.Name {
	case "builtins", "types", "_typeshed":
		return true
	default:
		return false
	}
}

// Resolver resolves file identities to Modules and caches them by identity,
// a mutex-guarded lookup cache over file identity instead of parsed ASTs.
type Resolver struct {
	mu          sync.RWMutex
	cache       map[string]*Module
	stdlibRoots []string
}

// NewResolver creates a Resolver. stdlibRoots are directory prefixes (already
// absolute and slash-normalized) treated as standard-library search paths;
// callers typically pass a single typeshed vendoring root.
func NewResolver(stdlibRoots ...string) *Resolver {
	roots := make([]string, len(stdlibRoots))
	for i, r := range stdlibRoots {
		roots[i] = normalizePath(r)
	}
	return &Resolver{
		cache:       make(map[string]*Module),
		stdlibRoots: roots,
	}
}

// Resolve returns the Module for filePath, computing and caching it on first
// use. The same filePath always returns the same *Module pointer for the
// lifetime of the Resolver, which is what lets the kernel's Module(file)
// type form be interned by pointer identity.
func (r *Resolver) Resolve(filePath string) *Module {
	identity := normalizePath(filePath)

	r.mu.RLock()
	if mod, ok := r.cache[identity]; ok {
		r.mu.RUnlock()
		return mod
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if mod, ok := r.cache[identity]; ok {
		return mod
	}

	mod := &Module{
		Identity:   identity,
		FilePath:   identity,
		Name:       deriveName(identity),
		StdlibRoot: r.matchingStdlibRoot(identity),
	}
	r.cache[identity] = mod
	return mod
}

// matchingStdlibRoot returns the first registered stdlib root that is a
// prefix of identity, or "" if none match.
func (r *Resolver) matchingStdlibRoot(identity string) string {
	for _, root := range r.stdlibRoots {
		if root != "" && strings.HasPrefix(identity, root+"/") {
			return root
		}
	}
	return ""
}

// deriveName turns a file path into a dotted module name, dropping a
// trailing "/__init__" segment the way a package directory would collapse
// to its package name.
func deriveName(identity string) string {
	base := strings.TrimSuffix(filepath.Base(identity), filepath.Ext(identity))
	if base == "__init__" {
		dir := filepath.Dir(identity)
		base = filepath.Base(dir)
	}
	return base
}

// normalizePath canonicalizes a path for stable identity: forward
// slashes, case-folded on case-insensitive filesystems, cleaned.
func normalizePath(path string) string {
	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	if isCaseInsensitiveFS() {
		path = strings.ToLower(path)
	}
	return filepath.ToSlash(path)
}

func isCaseInsensitiveFS() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// DisplayKey returns a short human-readable key for a Module, used in
// diagnostic messages and golden test output (`<module "builtins">`).
func (m *Module) DisplayKey() string {
	if m == nil {
		return "<module ?>"
	}
	return "<module " + strconv.Quote(m.Name) + ">"
}
