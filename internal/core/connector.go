package core

import "context"

// Connector is one live platform session for one user. Start blocks until
// the session ends or ctx is cancelled.
type Connector interface {
	Platform() Platform
	Start(ctx context.Context) error
	Stop() error
}

// Credentials are what a connector needs to open a session.
type Credentials struct {
	UserID   string
	Platform Platform
	Token    string
}

// ConnectionsRepository persists credentials so connections survive
// restarts. Message history itself is never persisted.
type ConnectionsRepository interface {
	Save(ctx context.Context, creds Credentials) error
	Delete(ctx context.Context, userID string, platform Platform) error
	DeleteAll(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]Credentials, error)
	All(ctx context.Context) ([]Credentials, error)
}

// ConnectionManager owns running connectors and the connected-platform set
// per user.
type ConnectionManager interface {
	Connect(ctx context.Context, userID string, platform Platform, token string) error
	Disconnect(ctx context.Context, userID string, platform Platform) error
	DisconnectAll(ctx context.Context, userID string) error
	Connected(userID string) []Platform
}
