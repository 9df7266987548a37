package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetClient_Singleton(t *testing.T) {
	c := GetClient()

	assert.Same(t, c, GetClient())
	assert.Equal(t, 30*time.Second, c.Timeout)
}
