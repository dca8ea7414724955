// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"cmp"
	_ "embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// ShaderRef is the logical path of a registered shader.
type ShaderRef string

const (
	// EmbeddedPrefix is prepended to every path in a ShaderRegistry.
	EmbeddedPrefix = "embedded://plotui/"

	PlotShaderPath ShaderRef = EmbeddedPrefix + "plot.wgsl"
	PlotKagePath   ShaderRef = EmbeddedPrefix + "plot.kage"
)

var (
	//go:embed shaders/plot.wgsl
	plotWGSL []byte
	//go:embed shaders/plot.kage
	plotKage []byte
)

// ShaderRegistry maps logical shader paths to their source.
// Registration is additive: registering a path again replaces its source.
type ShaderRegistry struct {
	sources map[ShaderRef][]byte
}

// NewShaderRegistry returns an empty registry.
func NewShaderRegistry() *ShaderRegistry {
	return &ShaderRegistry{sources: make(map[ShaderRef][]byte)}
}

// shaderRef normalizes filePath ("shaders\\plot.wgsl", "/plot.wgsl") into
// a ShaderRef under EmbeddedPrefix.
func shaderRef(filePath string) ShaderRef {
	if strings.HasPrefix(filePath, EmbeddedPrefix) {
		return ShaderRef(filePath)
	}
	norm := path.Clean(strings.ReplaceAll(filePath, "\\", "/"))
	norm = strings.TrimLeft(norm, "/")
	return ShaderRef(EmbeddedPrefix + norm)
}

// RegisterFile registers data under filePath and returns its ShaderRef.
// Empty data is ignored.
func (r *ShaderRegistry) RegisterFile(filePath string, data []byte) ShaderRef {
	ref := shaderRef(filePath)
	if len(data) == 0 {
		return ref
	}
	r.sources[ref] = data
	Logger().Debug("plotui: registered shader", "path", string(ref), "bytes", len(data))
	return ref
}

// RegisterFS registers every file of fsys, keyed by its path inside fsys.
//
// Example with embed.FS:
//
//	//go:embed shaders
//	var shaderFiles embed.FS
//	err := reg.RegisterFS(shaderFiles)
func (r *ShaderRegistry) RegisterFS(fsys fs.FS) error {
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, readErr := fs.ReadFile(fsys, p)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", p, readErr)
		}
		r.RegisterFile(p, data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking FS: %w", err)
	}
	return nil
}

// Lookup returns the source registered under ref.
func (r *ShaderRegistry) Lookup(ref ShaderRef) ([]byte, bool) {
	src, ok := r.sources[ref]
	return src, ok
}

// Len returns the number of registered shaders.
func (r *ShaderRegistry) Len() int {
	return len(r.sources)
}

// ReflectShaderBindings parses WGSL source and lists its resource
// bindings ordered by group and binding.
func ReflectShaderBindings(src string) ([]ShaderBinding, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("lowering: %w", err)
	}
	var out []ShaderBinding
	for _, gv := range module.GlobalVariables {
		if gv.Binding == nil {
			continue
		}
		out = append(out, ShaderBinding{
			Group:   gv.Binding.Group,
			Binding: gv.Binding.Binding,
			Kind:    bindingKind(module, gv),
			Name:    gv.Name,
		})
	}
	slices.SortFunc(out, func(a, b ShaderBinding) int {
		return cmp.Or(cmp.Compare(a.Group, b.Group), cmp.Compare(a.Binding, b.Binding))
	})
	return out, nil
}

func bindingKind(m *ir.Module, gv ir.GlobalVariable) BindingKind {
	switch gv.Space {
	case ir.SpaceUniform:
		return BindingUniform
	case ir.SpaceStorage:
		return BindingStorage
	}
	if int(gv.Type) >= len(m.Types) {
		return BindingUnknown
	}
	switch m.Types[gv.Type].Inner.(type) {
	case ir.ImageType, *ir.ImageType:
		return BindingTexture
	case ir.SamplerType, *ir.SamplerType:
		return BindingSampler
	}
	return BindingUnknown
}

// CheckMaterialShader verifies that the WGSL source binds exactly the
// resources of MaterialBindings in the material bind group. Bindings in
// other groups (view, globals) are ignored.
func CheckMaterialShader(src string) error {
	bindings, err := ReflectShaderBindings(src)
	if err != nil {
		return err
	}
	var got []ShaderBinding
	for _, b := range bindings {
		if b.Group == MaterialBindGroup {
			got = append(got, b)
		}
	}
	want := MaterialBindings()
	if len(got) != len(want) {
		return fmt.Errorf("%w: want %d bindings in group %d, got %d", ErrBindingMismatch, len(want), MaterialBindGroup, len(got))
	}
	for i := range want {
		if got[i].Binding != want[i].Binding || got[i].Kind != want[i].Kind {
			return fmt.Errorf("%w: want %s, got %s", ErrBindingMismatch, want[i], got[i])
		}
	}
	return nil
}
