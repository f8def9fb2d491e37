package ports

import "context"

// VersionChecker looks up the latest published release.
//
//go:generate go run go.uber.org/mock/mockgen -source=version.go -destination=mocks/mock_version.go -package=mocks
type VersionChecker interface {
	// Latest returns the newest stable version newer than current.
	// It returns "" when current is already the newest or cannot be compared.
	Latest(ctx context.Context, current string) (string, error)
}
