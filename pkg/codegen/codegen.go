// Package codegen turns a loaded GraphQL document into a TypeScript module of RTK Query bindings.
package codegen

import (
	"io"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/pkg/config"
	"github.com/wundergraph/rtkquery-codegen/pkg/rtkquery"
)

type Option func(c *CodeGen)

func WithLogger(log abstractlogger.Logger) Option {
	return func(c *CodeGen) {
		c.log = log
	}
}

// CodeGen renders one output file. Every call to Generate uses a fresh rtkquery.Module.
type CodeGen struct {
	doc    *ast.QueryDocument
	config config.Config
	log    abstractlogger.Logger
}

func NewCodeGen(doc *ast.QueryDocument, cfg config.Config, opts ...Option) *CodeGen {
	c := &CodeGen{
		doc:    doc,
		config: cfg,
		log:    abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate writes the imports, the fragment constants, the operation documents and the
// injection call to w.
func (c *CodeGen) Generate(w io.Writer) (int, error) {
	module := rtkquery.NewModule(c.config, rtkquery.WithLogger(c.log))
	documents, err := rtkquery.NewVisitor(module.Bookkeeper(), module).Walk(c.doc)
	if err != nil {
		return 0, errors.Wrap(err, "codegen")
	}

	blocks := make([]string, 0, len(documents)+2)
	if fragments := c.fragments(); fragments != "" {
		blocks = append(blocks, fragments)
	}
	blocks = append(blocks, documents...)
	blocks = append(blocks, module.InjectCall())

	content := strings.Join(blocks, "\n")
	if imports := module.Imports(); len(imports) != 0 {
		content = strings.Join(imports, "\n") + "\n\n" + content
	}

	c.log.Debug("codegen.CodeGen.Generate",
		abstractlogger.Int("operations", len(c.doc.Operations)),
		abstractlogger.Int("documents", len(documents)),
		abstractlogger.Int("endpoints", len(module.Endpoints())),
	)

	return io.WriteString(w, content)
}

func (c *CodeGen) fragments() string {
	rendered := make([]string, 0, len(c.doc.Fragments))
	for _, fragment := range c.doc.Fragments {
		rendered = append(rendered, rtkquery.RenderFragmentDocument(fragment, c.config.ExportDocument))
	}
	return strings.Join(rendered, "\n\n")
}
