package storage

import (
	"context"
	"errors"
)

// Keys under which the three collections are persisted.
const (
	KeyProducts    = "products"
	KeyOrders      = "orders"
	KeyAdminConfig = "adminConfig"
)

// ErrNotFound is returned by Load for a key that has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Driver is a durable key-value blob store. Save replaces the whole value
// under the key; there is no partial patch.
type Driver interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
