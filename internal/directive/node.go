// SPDX-License-Identifier: MPL-2.0

package directive

import (
	"github.com/yuin/goldmark/ast"

	"extrasdoc/internal/pep508"
	"extrasdoc/internal/sources"
)

// DefaultScope is used when a directive has no :scope: option.
const DefaultScope = "module"

// KindExtrasRequire is the node kind of the extras-require block.
var KindExtrasRequire = ast.NewNodeKind("ExtrasRequire")

// ExtrasRequireBlock is the AST node for one extras-require directive.
type ExtrasRequireBlock struct {
	ast.BaseBlock

	// Extra is the extras group named by the directive argument.
	Extra string

	// Scope is the cosmetic scope label (module, class, function, package).
	Scope string

	// Options are the source options given on the directive.
	Options sources.Options

	// Body holds the inline content lines.
	Body []string

	// UnknownOptions records option names the directive does not define.
	// A non-empty list makes the directive invalid at resolution time.
	UnknownOptions []string

	// Offset is the byte offset of the marker line, for error positions.
	Offset int

	// Requirements is filled by the resolver before rendering.
	Requirements []pep508.Requirement
}

// NewExtrasRequireBlock returns an empty directive node with the default scope.
func NewExtrasRequireBlock(extra string, offset int) *ExtrasRequireBlock {
	return &ExtrasRequireBlock{
		Extra:   extra,
		Scope:   DefaultScope,
		Options: sources.Options{},
		Offset:  offset,
	}
}

// Kind implements ast.Node.
func (n *ExtrasRequireBlock) Kind() ast.NodeKind {
	return KindExtrasRequire
}

// IsRaw reports that the block content must not be parsed as inline Markdown.
func (n *ExtrasRequireBlock) IsRaw() bool {
	return true
}

// Dump implements ast.Node.
func (n *ExtrasRequireBlock) Dump(source []byte, level int) {
	m := map[string]string{
		"Extra": n.Extra,
		"Scope": n.Scope,
	}
	ast.DumpHelper(n, source, level, m, nil)
}
