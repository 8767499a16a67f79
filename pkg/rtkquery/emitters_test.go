package rtkquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestRenderEndpoint(t *testing.T) {
	query := Endpoint{
		Name:             "getIcon",
		Kind:             ast.Query,
		ResultType:       "GetIconQuery",
		VariablesType:    "GetIconQueryVariables",
		DocumentVariable: "GetIconDocument",
	}

	t.Run("optional arguments", func(t *testing.T) {
		assert.Equal(t, "\n    getIcon: build.query<GetIconQuery, IUseFetcherArgs<GetIconQueryVariables> | void>({\n"+
			"      query: (args) => ({ document: GetIconDocument, args })\n"+
			"    }),", RenderEndpoint(query, false))
	})

	t.Run("required arguments with transform", func(t *testing.T) {
		mutation := Endpoint{
			Name:                 "likePost",
			Kind:                 ast.Mutation,
			ResultType:           "LikePostMutation",
			VariablesType:        "LikePostMutationVariables",
			DocumentVariable:     "LikePostDocument",
			HasRequiredVariables: true,
		}
		assert.Equal(t, "\n    likePost: build.mutation<LikePostMutation, IUseFetcherArgs<LikePostMutationVariables>>({\n"+
			"      query: (args) => ({ document: LikePostDocument, args }),\n"+
			"      transformResponse: (response: LikePostMutation) => response\n"+
			"    }),", RenderEndpoint(mutation, true))
	})
}

func TestRenderSubscriptionHook(t *testing.T) {
	e := Endpoint{
		Name:             "onMessage",
		Kind:             ast.Subscription,
		ResultType:       "OnMessageSubscription",
		VariablesType:    "OnMessageSubscriptionVariables",
		DocumentVariable: "OnMessageDocument",
	}

	t.Run("optional options", func(t *testing.T) {
		assert.Equal(t, `export const useOnMessage = <
  TData = OnMessageSubscription,
  TError = unknown
>(
  args?: SubscriptionHookOptions<TData, OnMessageSubscriptionVariables>,
) =>
  useSubscription<TData, OnMessageSubscriptionVariables>(gql(OnMessageDocument), args);
`, RenderSubscriptionHook(e))
	})

	t.Run("required options", func(t *testing.T) {
		e.HasRequiredVariables = true
		assert.Contains(t, RenderSubscriptionHook(e), "\n  args: SubscriptionHookOptions<TData, OnMessageSubscriptionVariables>,\n")
	})
}

func TestAccessorNames(t *testing.T) {
	assert.Equal(t, []string{"useGetIconQuery", "useLazyGetIconQuery"}, AccessorNames(ast.Query, "getIcon"))
	assert.Equal(t, []string{"useLikePostMutation"}, AccessorNames(ast.Mutation, "likePost"))
	assert.Empty(t, AccessorNames(ast.Subscription, "onMessage"))
}
