// Package registry discovers solver strategies from one or more sources and
// exposes them for lookup by name. The built-in source carries the six
// standard strategies; an extension source reads YAML descriptors from a
// directory, letting users add renamed or re-parameterized strategies
// without recompiling.
//
// Discovery is fault-absorbing: a definition that fails to parse or build
// is logged and skipped, never aborting discovery of the rest. Failures
// from the last reload stay queryable via Failures.
//
// When two sources define the same name, the later registration replaces
// the earlier one while keeping its position in the listing order. Sources
// run built-in first, extensions second; rely on the ordering, not on the
// replacement, which mirrors the historical behavior without being a
// guaranteed contract.
package registry
