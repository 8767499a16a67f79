// Command rtkquery generates RTK Query bindings for GraphQL operations.
//
// About RTK Query
//
// RTK Query is the data fetching layer of Redux Toolkit. A base api created with createApi can be
// extended with injectEndpoints, which is what the generated modules do: every query and mutation
// becomes an endpoint fetching its document through the base api, the endpoints' hooks are
// re-exported, and subscriptions get standalone hooks on top of apollo's useSubscription.
//
// About this tool
//
// Operations and fragments are loaded from .graphql files. Files can include other files with
// import comments:
//
//	#import "../fragments/*.graphql"
//
// Outputs are either configured with flags (rtkquery gen rtkQuery) or listed in a project file
// (rtkquery gen --config codegen.yml). Documents are validated against the schema when one is given.
package main
