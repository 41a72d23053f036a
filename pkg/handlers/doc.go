/*
Package handlers holds the concrete dispatch.Handler implementations
topology builders dispatch with (spec.md §4.4):

  - BasicCopy copies V.Value onto every node of type V.VolType, unless
    V.Option is "!"-prefixed (owned by one of the handlers below).
  - ServerAuth expands a whole-volume auth rule into one
    auth.addr.<child>.<suffix> option per subvolume of the server root.
  - LogLevel(role) validates and routes diagnostics.<role>-log-level
    onto the debug/io-stats nodes of the matching role's graph.
  - PerfToggle stacks a performance translator onto the client graph's
    root when the corresponding performance.* toggle is truthy.
  - Optget/Get implement the option-table lookup used by "volgen get".
  - ServerSpec composes ServerAuth and LogLevel("brick") — the handler
    the server builder dispatches with in one pass (§4.5 step 8).
*/
package handlers
