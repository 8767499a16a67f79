package rtkquery

import "strings"

// RenderSubscriptionHook renders a standalone apollo subscription hook.
// injectEndpoints has no subscription endpoint kind, so subscriptions never become endpoints.
func RenderSubscriptionHook(e Endpoint) string {
	optional := "?"
	if e.HasRequiredVariables {
		optional = ""
	}

	var b strings.Builder
	b.WriteString("export const use")
	b.WriteString(PascalCase(e.Name))
	b.WriteString(" = <\n  TData = ")
	b.WriteString(e.ResultType)
	b.WriteString(",\n  TError = unknown\n>(\n  args")
	b.WriteString(optional)
	b.WriteString(": SubscriptionHookOptions<TData, ")
	b.WriteString(e.VariablesType)
	b.WriteString(">,\n) =>\n  useSubscription<TData, ")
	b.WriteString(e.VariablesType)
	b.WriteString(">(gql(")
	b.WriteString(e.DocumentVariable)
	b.WriteString("), args);\n")
	return b.String()
}
