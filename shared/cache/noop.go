package cache

import "context"

// noopCache satisfies Cache without storing anything. Get always misses and
// Increment always reports a count of one, so rate limits never trip.
type noopCache struct{}

func (*noopCache) Save(context.Context, string, any, int) error { return nil }

func (*noopCache) Get(context.Context, string, any) error { return Nil }

func (*noopCache) Delete(context.Context, string) error { return nil }

func (*noopCache) Clear(context.Context, string) error { return nil }

func (*noopCache) Increment(context.Context, string, int) (int64, error) { return 1, nil }
