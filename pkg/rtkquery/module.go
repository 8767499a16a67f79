// Package rtkquery emits RTK Query bindings for GraphQL operations.
//
// A Module collects one endpoint per query and mutation, the hook names of those endpoints and
// a standalone hook per subscription. Once all operations are visited it renders a single
// injectEndpoints call on the configured base api together with the configured exports.
package rtkquery

import (
	"fmt"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/wundergraph/rtkquery-codegen/internal/pkg/quotes"
	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

const (
	injectedAPIName = "injectedRtkApi"
	apolloImport    = "import {gql, useSubscription, SubscriptionHookOptions} from '@apollo/client';"
)

var ErrModuleFinalized = errors.New("rtkquery: module is already finalized")

type State int

const (
	StateEmpty State = iota
	StateCollecting
	StateFinalizing
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCollecting:
		return "collecting"
	case StateFinalizing:
		return "finalizing"
	case StateRendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Option func(m *Module)

func WithLogger(log abstractlogger.Logger) Option {
	return func(m *Module) {
		m.log = log
	}
}

// Module accumulates the output of one generation run.
// It must not be shared between runs or used from multiple goroutines.
type Module struct {
	config    config.Config
	namer     TypeNamer
	collector *OperationCollector
	log       abstractlogger.Logger
	state     State

	endpoints     []string
	hooks         []string
	subscriptions []string
}

func NewModule(cfg config.Config, opts ...Option) *Module {
	m := &Module{
		config:    cfg,
		namer:     NewTypeNamer(cfg),
		collector: NewOperationCollector(cfg),
		log:       abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bookkeeper returns the bookkeeping capability that must see every operation before EmitOperation.
func (m *Module) Bookkeeper() *OperationCollector {
	return m.collector
}

func (m *Module) State() State {
	return m.state
}

// EmitOperation returns the document constant of operation and records its endpoint,
// or its subscription hook, plus its hook names. Unnamed operations are skipped.
func (m *Module) EmitOperation(operation *ast.OperationDefinition) (string, error) {
	if m.state >= StateFinalizing {
		return "", ErrModuleFinalized
	}
	m.state = StateCollecting

	if operation.Name == "" {
		m.log.Debug("rtkquery.Module.EmitOperation: skipping unnamed operation",
			abstractlogger.String("kind", string(operation.Operation)),
		)
		return "", nil
	}

	document := RenderDocument(operation, FragmentReferences(operation.SelectionSet), m.config.ExportDocument)
	endpoint := Endpoint{
		Name:                 operation.Name,
		Kind:                 operation.Operation,
		ResultType:           m.namer.ResultType(operation.Operation, operation.Name),
		VariablesType:        m.namer.VariablesType(operation.Operation, operation.Name),
		DocumentVariable:     DocumentVariableName(operation.Name),
		HasRequiredVariables: HasRequiredVariables(operation),
	}

	switch operation.Operation {
	case ast.Subscription:
		m.subscriptions = append(m.subscriptions, RenderSubscriptionHook(endpoint))
	case ast.Query, ast.Mutation:
		m.endpoints = append(m.endpoints, RenderEndpoint(endpoint, m.config.AddTransformResponse))
		if m.config.ExportHooks {
			m.hooks = append(m.hooks, AccessorNames(operation.Operation, operation.Name)...)
		}
	default:
		return "", fmt.Errorf("rtkquery: unsupported operation type %q", operation.Operation)
	}

	m.log.Debug("rtkquery.Module.EmitOperation",
		abstractlogger.String("operation", operation.Name),
		abstractlogger.String("kind", string(operation.Operation)),
	)

	return document, nil
}

func (m *Module) Endpoints() []string {
	return append([]string(nil), m.endpoints...)
}

func (m *Module) Hooks() []string {
	return append([]string(nil), m.hooks...)
}

func (m *Module) Subscriptions() []string {
	return append([]string(nil), m.subscriptions...)
}

// InjectCall finalizes the module and renders the injectEndpoints call, the api export,
// the hook export and the subscription hooks. It renders nothing when no operation was visited.
func (m *Module) InjectCall() string {
	if m.state < StateFinalizing {
		m.state = StateFinalizing
	}
	defer func() {
		m.state = StateRendered
	}()

	if !m.collector.HasOperations() {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nconst ")
	b.WriteString(injectedAPIName)
	b.WriteString(" = ")
	b.WriteString(m.config.ImportBaseAPIAlternateName)
	b.WriteString(".injectEndpoints({\n  ")
	if m.config.OverrideExisting != "" {
		b.WriteString("overrideExisting: ")
		b.WriteString(m.config.OverrideExisting)
		b.WriteString(",\n  ")
	}
	b.WriteString("endpoints: (build) => ({")
	b.WriteString(strings.Join(m.endpoints, ""))
	b.WriteString("\n  }),\n});\n\n")
	b.WriteString(m.apiExport())
	b.WriteString("\n")
	if m.config.ExportHooks {
		b.WriteString("export const { ")
		b.WriteString(strings.Join(m.hooks, ", "))
		b.WriteString(" } = ")
		b.WriteString(injectedAPIName)
		b.WriteString(";")
	}
	b.WriteString("\n\n")
	if m.config.ExportHooks {
		b.WriteString(strings.Join(m.subscriptions, "\n"))
	}
	b.WriteString("\n\n")
	return b.String()
}

func (m *Module) apiExport() string {
	switch {
	case m.config.ExportDefaultAPI:
		return "export default " + injectedAPIName + ";"
	case m.config.ExportAPI:
		return "export { " + injectedAPIName + " as " + m.config.APIName() + " };"
	default:
		return ""
	}
}

// Imports returns the import statements the rendered module depends on.
func (m *Module) Imports() []string {
	if !m.collector.HasOperations() {
		return nil
	}

	imports := append([]string(nil), m.collector.Imports()...)
	imports = append(imports,
		fmt.Sprintf("import {%s} from %s;", m.config.ImportBaseAPIAlternateName, quotes.WrapSingle(m.config.ImportBaseAPIFrom)),
		apolloImport,
	)
	return imports
}
