// Package kitchen owns the persisted meal catalog.
//
// The catalog is backed by SQLite and exposes create, lookup, soft-delete,
// stat-update and leaderboard operations. Meals are never physically removed
// by normal operations: deletion sets a flag, and a soft-deleted meal rejects
// every further read or mutation. Only Reset recreates the catalog empty.
//
// All check-then-update sequences (soft delete, stat updates) run inside a
// single SQL transaction so a concurrent caller acting on the same meal
// cannot slip between the check and the update.
package kitchen
