package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quenchlab/barkeep/config"
)

func TestEmbeddingCacheKeyIsModelScoped(t *testing.T) {
	a := NewEmbeddingCache(&config.Config{ModelName: "all-minilm:l6-v2"})
	b := NewEmbeddingCache(&config.Config{ModelName: "all-MiniLM-L12-v2"})

	assert.Equal(t, a.key("contains gin"), a.key("contains gin"))
	assert.NotEqual(t, a.key("contains gin"), a.key("contains tonic"))
	// same phrase under a different model must never collide
	assert.NotEqual(t, a.key("contains gin"), b.key("contains gin"))
}
