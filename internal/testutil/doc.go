// Package testutil contains helper fixtures used across tests to reduce
// boilerplate when constructing puzzle grids (the classic sample puzzle,
// its solution, unsolvable and near-complete boards). These helpers are
// intentionally minimal and avoid adding third-party dependencies. They are
// not intended for production usage.
package testutil
