// Package models defines the core domain models for the group ledger.
//
// # Models
//
//   - User: a registered member, resolved from the user directory
//   - Group: a set of members sharing costs, owning a balance map
//   - GroupExpense: append-only record of an expense applied to a group ledger
//   - Settlement: a logical payment between two members of a group
//   - Expense: a personal expense, independent of any group
//
// # Design Principles
//
// 1. **Identities are strings**: members are referenced by user ID, never by pointer
// 2. **Balances sum to zero**: a group's balance map nets to zero after every write
// 3. **Append-mostly history**: settlements and group expenses are audit records
// 4. **Exact money**: amounts are decimal.Decimal, persisted as integer cents
package models
