package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const storeTimeout = 3 * time.Second

// cached sirve key desde el cache si esta; si no, llama a load y guarda el
// resultado salvo que un fetch mas nuevo de la misma key ya lo haya hecho.
// Fallas del cache se loguean y no cortan la pagina.
func cached[T any](ctx context.Context, d *Dashboard, key string, load func(context.Context) (T, error)) (T, error) {
	if d.cache == nil {
		return load(ctx)
	}

	b, ok, err := d.cache.Get(ctx, key)
	switch {
	case err != nil:
		d.log.Warn("cache get", zap.String("key", key), zap.Error(err))
	case ok:
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		d.log.Warn("cache entry undecodable", zap.String("key", key))
	}

	token := d.seq.begin(key)
	v, err := load(ctx)
	if err != nil {
		d.seq.abandon(key)
		return v, err
	}

	b, err = json.Marshal(v)
	if err != nil {
		d.seq.abandon(key)
		d.log.Warn("cache encode", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	stored := d.seq.commit(key, token, func() {
		// el write sobrevive a la cancelacion del request pero no puede
		// colgarse: solo bloquea a otros fetch de la misma key
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
		defer cancel()
		if err := d.cache.Set(storeCtx, key, b); err != nil {
			d.log.Warn("cache set", zap.String("key", key), zap.Error(err))
		}
	})
	if !stored {
		d.log.Debug("superseded fetch not cached", zap.String("key", key), zap.Uint64("token", token))
	}
	return v, nil
}
