package redis

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetClient() {
	client = nil
	clientErr = nil
	clientOnce = sync.Once{}
}

func TestInitializeWithoutURL(t *testing.T) {
	resetClient()
	defer resetClient()

	err := Initialize(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, Client())
	assert.False(t, IsAvailable(context.Background()))
	assert.NoError(t, Close())
}

func TestInitializeInvalidURL(t *testing.T) {
	resetClient()
	defer resetClient()

	err := Initialize(context.Background(), Config{URL: "http://not-redis"})
	assert.Error(t, err)
	assert.Nil(t, Client())
}
