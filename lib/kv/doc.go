// Package kv defines the domain model and client interface for rKV,
// an HTTP client for Riak-compatible distributed key-value stores.
//
// The package focuses on:
//   - A typed, immutable value model (Value) carrying the causality
//     metadata the store needs: vector clock, entity tag and
//     last-modified timestamp, plus secondary-index attachments
//   - A unified client interface (IClient) for key-value and
//     secondary-index operations across different wire implementations
//   - Pluggable sibling-conflict resolution through the
//     IConflictResolver interface
//   - A structured error system with typed return codes
//
// Key Components:
//
//   - Value: one version of a key as the store sees it. A Value is only
//     ever constructed from a store response that carries a complete
//     metadata triple (vector clock, entity tag, last-modified); a
//     response missing any of the three yields no Value at all, since
//     partial metadata cannot participate in causality comparison.
//
//   - IndexEntry: a secondary-index attachment, a closed two-variant
//     union of string ("bin") and integer ("int") indexes. Entries
//     compare by (name, kind, value).
//
//   - ConflictSet: the set of divergent sibling Values the store
//     returned for one key. Structurally equal Values collapse.
//
//   - IConflictResolver: the caller-supplied policy that picks one
//     Value out of a ConflictSet. The package ships a
//     last-write-wins implementation and a func adapter; domain merges
//     implement the interface directly.
//
//   - Error System: operations fail with *Error values carrying a
//     RetCode (invalid parameters, operation failed, conflict
//     resolution failed). An absent key is not an error.
//
// The wire implementation of IClient lives in the
// "github.com/rkvclient/rkv/riak/client" package.
package kv
