package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Cache = NopCache{}

	assert.NoError(t, c.Set(ctx, "spot:1", "{}", time.Minute))
	_, err := c.Get(ctx, "spot:1")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Delete(ctx, "spot:1"))
}
