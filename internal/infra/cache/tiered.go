package cache

import (
	"context"
	"errors"
)

// Store es lo que Tiered necesita de cada nivel.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Tiered lee primero L1 (memoria) y despues L2 (Postgres); un hit en L2
// repuebla L1. Escribe y borra en ambos.
type Tiered struct {
	L1 Store
	L2 Store
}

func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b, ok, err := t.L1.Get(ctx, key); err == nil && ok {
		return b, true, nil
	}
	b, ok, err := t.L2.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = t.L1.Set(ctx, key, b)
	return b, true, nil
}

func (t *Tiered) Set(ctx context.Context, key string, val []byte) error {
	return errors.Join(t.L1.Set(ctx, key, val), t.L2.Set(ctx, key, val))
}

func (t *Tiered) Delete(ctx context.Context, keys ...string) error {
	return errors.Join(t.L1.Delete(ctx, keys...), t.L2.Delete(ctx, keys...))
}
