package template

import "io"

// File treats a referenced path as a nested template root, guarding
// against unbounded recursion with a global include-depth counter.
type File struct {
	id   int
	name string
	path string
	root *Block
}

func (f *File) ID() int      { return f.id }
func (f *File) Name() string { return f.name }

func (f *File) Generate(ctx *genCtx, contextValue int64, w io.Writer) (int, error) {
	ctx.includeDepth++
	defer func() { ctx.includeDepth-- }()
	if ctx.includeDepth > maxIncludeDepth {
		return 0, writeError(f.id, f.name, newParseError(0, "file include depth exceeded %d levels at %q", maxIncludeDepth, f.path))
	}
	return f.root.Generate(ctx, contextValue, w)
}
