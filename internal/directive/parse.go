// SPDX-License-Identifier: MPL-2.0

package directive

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"extrasdoc/internal/sources"
)

// marker opens an extras-require block; the directive argument follows it.
const marker = "extras-require::"

var optionPattern = regexp.MustCompile(`^:([a-zA-Z-]+):[ \t]*(.*)$`)

// optionKinds maps directive option names to source kinds.
var optionKinds = map[string]sources.Kind{
	"file":      sources.KindFile,
	"pkginfo":   sources.KindPkgInfo,
	"setup-cfg": sources.KindSetupCfg,
	"pyproject": sources.KindPyproject,
	"flit":      sources.KindFlit,
}

type blockParser struct{}

// NewBlockParser returns the block parser for extras-require directives.
func NewBlockParser() parser.BlockParser {
	return &blockParser{}
}

// Trigger implements parser.BlockParser.
func (p *blockParser) Trigger() []byte {
	return []byte{'e'}
}

// Open implements parser.BlockParser. It claims lines of the form
// "extras-require:: <extra>" at block start.
func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos > 3 {
		return nil, parser.NoChildren
	}

	trimmed := strings.TrimRight(string(line[pos:]), "\r\n")
	if !strings.HasPrefix(trimmed, marker) {
		return nil, parser.NoChildren
	}
	extra := strings.TrimSpace(trimmed[len(marker):])
	if extra == "" || strings.ContainsAny(extra, " \t") {
		return nil, parser.NoChildren
	}

	return NewExtrasRequireBlock(extra, segment.Start+pos), parser.NoChildren
}

// Continue implements parser.BlockParser. Option and body lines are
// collected verbatim until a blank line closes the block.
func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Close
	}
	node.Lines().Append(segment)
	reader.Advance(segment.Len() - 1)
	return parser.Continue | parser.NoChildren
}

// Close implements parser.BlockParser. The collected lines are split into
// options and body content.
func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	n := node.(*ExtrasRequireBlock)
	source := reader.Source()

	inOptions := true
	for i := 0; i < n.Lines().Len(); i++ {
		segment := n.Lines().At(i)
		line := strings.TrimRight(string(segment.Value(source)), "\r\n")

		if inOptions {
			if m := optionPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				n.setOption(m[1], strings.TrimSpace(m[2]))
				continue
			}
			inOptions = false
		}
		n.Body = append(n.Body, line)
	}
}

// CanInterruptParagraph implements parser.BlockParser.
func (p *blockParser) CanInterruptParagraph() bool {
	return false
}

// CanAcceptIndentedLine implements parser.BlockParser.
func (p *blockParser) CanAcceptIndentedLine() bool {
	return false
}

func (n *ExtrasRequireBlock) setOption(name, value string) {
	if name == "scope" {
		if value != "" {
			n.Scope = value
		}
		return
	}
	if kind, ok := optionKinds[name]; ok {
		n.Options[kind] = value
		return
	}
	n.UnknownOptions = append(n.UnknownOptions, name)
}
