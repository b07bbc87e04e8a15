// SPDX-License-Identifier: MPL-2.0

package directive

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"extrasdoc/internal/pep508"
)

// HTMLRenderer renders ExtrasRequireBlock nodes as admonition markup.
type HTMLRenderer struct {
	// Project is the distribution name used in the pip-install hint.
	// When empty the hint is omitted.
	Project string
}

// NewHTMLRenderer returns a renderer for extras-require blocks.
func NewHTMLRenderer(project string) renderer.NodeRenderer {
	return &HTMLRenderer{Project: project}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindExtrasRequire, r.render)
}

func (r *HTMLRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ExtrasRequireBlock)

	// A directive that resolved to nothing renders nothing; the build pass
	// has already logged the warning.
	if len(n.Requirements) == 0 {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<div class="admonition attention extras-require" data-extra="`)
	_, _ = w.Write(util.EscapeHTML([]byte(n.Extra)))
	_, _ = w.WriteString(`" data-scope="`)
	_, _ = w.Write(util.EscapeHTML([]byte(n.Scope)))
	_, _ = w.WriteString("\">\n")
	_, _ = w.WriteString("<p class=\"admonition-title\">Attention</p>\n")

	_, _ = w.WriteString("<p>")
	_, _ = w.Write(util.EscapeHTML([]byte(leadSentence(n.Scope, len(n.Requirements)))))
	_, _ = w.WriteString("</p>\n<pre><code>")
	for _, req := range n.Requirements {
		_, _ = w.Write(util.EscapeHTML([]byte(req.String())))
		_, _ = w.WriteString("\n")
	}
	_, _ = w.WriteString("</code></pre>\n")

	if r.Project != "" {
		_, _ = w.WriteString("<p>These can be installed as follows:</p>\n<pre><code>")
		_, _ = w.Write(util.EscapeHTML([]byte(installHint(r.Project, n.Extra))))
		_, _ = w.WriteString("\n</code></pre>\n")
	}

	_, _ = w.WriteString("</div>\n")
	return ast.WalkContinue, nil
}

// AdmonitionMarkdown renders the admonition as Markdown text, used by the
// terminal preview. The wording matches the HTML output.
func AdmonitionMarkdown(reqs []pep508.Requirement, project, extra, scope string) string {
	var b strings.Builder

	b.WriteString("**Attention:** ")
	b.WriteString(leadSentence(scope, len(reqs)))
	b.WriteString("\n\n```text\n")
	for _, req := range reqs {
		b.WriteString(req.String())
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	if project != "" {
		b.WriteString("\nThese can be installed as follows:\n\n```bash\n")
		b.WriteString(installHint(project, extra))
		b.WriteString("\n```\n")
	}

	return b.String()
}

func leadSentence(scope string, count int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("This %s has the following additional requirement%s:", scope, plural)
}

func installHint(project, extra string) string {
	return fmt.Sprintf("$ python -m pip install %s[%s]", project, extra)
}
