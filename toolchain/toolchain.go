package toolchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/findprog/binpath"
	"github.com/jongio/findprog/logutil"
)

// Kind groups tools that serve the same role in a build.
type Kind string

const (
	// KindBuildTool is a build system driver such as ninja or make.
	KindBuildTool Kind = "build-tool"
	// KindLinker is a system linker.
	KindLinker Kind = "linker"
	// KindCompilerCache is a compiler wrapper that caches object files.
	KindCompilerCache Kind = "compiler-cache"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindBuildTool, KindLinker, KindCompilerCache}

var (
	// ErrUnknownKind is returned for a kind that is not in Kinds.
	ErrUnknownKind = errors.New("unknown tool kind")
	// ErrUnknownTool is returned for a tool name that is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")
)

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Spec describes a tool and the program names it may be installed under.
type Spec struct {
	Name       string
	Kind       Kind
	Candidates []string
}

var catalog = []Spec{
	{Name: "ninja", Kind: KindBuildTool, Candidates: []string{"ninja", "ninja-build"}},
	{Name: "make", Kind: KindBuildTool, Candidates: []string{"gmake", "make"}},
	{Name: "cmake", Kind: KindBuildTool, Candidates: []string{"cmake", "cmake3"}},
	{Name: "meson", Kind: KindBuildTool, Candidates: []string{"meson"}},

	{Name: "mold", Kind: KindLinker, Candidates: []string{"mold", "ld.mold"}},
	{Name: "lld", Kind: KindLinker, Candidates: []string{"ld.lld", "lld"}},
	{Name: "gold", Kind: KindLinker, Candidates: []string{"ld.gold"}},
	{Name: "bfd", Kind: KindLinker, Candidates: []string{"ld.bfd", "ld"}},

	{Name: "sccache", Kind: KindCompilerCache, Candidates: []string{"sccache"}},
	{Name: "ccache", Kind: KindCompilerCache, Candidates: []string{"ccache"}},
}

// Catalog returns the built-in tool specs in preference order.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	for i, s := range catalog {
		s.Candidates = append([]string(nil), s.Candidates...)
		out[i] = s
	}
	return out
}

// Tool is the resolution result for one Spec.
type Tool struct {
	Name    string `json:"name" yaml:"name"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Program string `json:"program,omitempty" yaml:"program,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
}

// Finder resolves a program basename to an absolute path.
// *binpath.Cache satisfies it.
type Finder interface {
	Find(name string) (string, bool)
}

// Resolver looks tools up through a Finder.
type Resolver struct {
	finder Finder
	specs  []Spec
	log    *logutil.ComponentLogger
}

// NewResolver creates a resolver over the built-in catalog. A nil finder
// uses the process-wide binpath cache.
func NewResolver(finder Finder) *Resolver {
	if finder == nil {
		finder = binpath.Default()
	}
	return &Resolver{
		finder: finder,
		specs:  Catalog(),
		log:    logutil.NewLogger("toolchain"),
	}
}

// Lookup resolves a tool by catalog name.
func (r *Resolver) Lookup(name string) (Tool, error) {
	for _, s := range r.specs {
		if s.Name == name {
			return r.resolve(s), nil
		}
	}
	return Tool{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Preferred returns the first installed tool of the given kind.
func (r *Resolver) Preferred(kind Kind) (Tool, bool) {
	for _, s := range r.specs {
		if s.Kind != kind {
			continue
		}
		if t := r.resolve(s); t.Found {
			return t, true
		}
	}
	return Tool{}, false
}

// ByKind resolves every tool of one kind, in preference order.
func (r *Resolver) ByKind(kind Kind) ([]Tool, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	var out []Tool
	for _, s := range r.specs {
		if s.Kind == kind {
			out = append(out, r.resolve(s))
		}
	}
	return out, nil
}

// All resolves the whole catalog.
func (r *Resolver) All() []Tool {
	out := make([]Tool, 0, len(r.specs))
	for _, s := range r.specs {
		out = append(out, r.resolve(s))
	}
	return out
}

func (r *Resolver) resolve(s Spec) Tool {
	t := Tool{Name: s.Name, Kind: s.Kind}
	for _, program := range s.Candidates {
		if path, ok := r.finder.Find(program); ok {
			t.Program = program
			t.Path = path
			t.Found = true
			break
		}
	}
	r.log.WithFields("tool", s.Name, "kind", s.Kind).Debug("resolved tool", "found", t.Found, "path", t.Path)
	return t
}
