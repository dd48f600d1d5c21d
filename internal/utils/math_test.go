package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
