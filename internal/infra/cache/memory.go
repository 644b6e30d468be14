package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	val     []byte
	expires time.Time
}

// Memory es un cache en proceso con TTL fijo por entrada. Los Set barren
// las entradas vencidas a lo sumo una vez por TTL, asi las keys que nunca
// se vuelven a leer no se acumulan.
type Memory struct {
	mu        sync.RWMutex
	ttl       time.Duration
	m         map[string]entry
	now       func() time.Time
	nextSweep time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, m: map[string]entry{}, now: time.Now}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		c.mu.Lock()
		if cur, ok := c.m[key]; ok && cur.expires.Equal(e.expires) {
			delete(c.m, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.val, true, nil
}

func (c *Memory) Set(_ context.Context, key string, val []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if !now.Before(c.nextSweep) {
		c.sweep(now)
		c.nextSweep = now.Add(c.ttl)
	}
	c.m[key] = entry{val: val, expires: now.Add(c.ttl)}
	return nil
}

// sweep borra lo vencido; requiere c.mu tomado.
func (c *Memory) sweep(now time.Time) {
	for k, e := range c.m {
		if !now.Before(e.expires) {
			delete(c.m, k)
		}
	}
}

func (c *Memory) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.m, k)
	}
	return nil
}

// Len counts entries, expired ones included until they are read.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
