// Package creds persists the stored session credentials (username + token)
// the CLI uses to restore a session without re-prompting for a password.
// The domain layer never reads this store directly; it receives the values
// as explicit arguments.
package creds

import "context"

// Repository stores at most one credential pair.
//
// Contract:
//   - Save: replace the stored pair atomically.
//   - Load: return the stored pair, or common.ErrNotFound when absent.
//   - Clear: remove any stored pair (logout).
type Repository interface {
	Save(ctx context.Context, username, token string) error
	Load(ctx context.Context) (username, token string, err error)
	Clear(ctx context.Context) error
}
