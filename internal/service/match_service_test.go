package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMBTI(t *testing.T) {
	assert.Equal(t, "INFP", normalizeMBTI("INFP"))
	assert.Equal(t, "ENFP", normalizeMBTI("enfp"), "lowercase stored codes still score")
	assert.Equal(t, "", normalizeMBTI("banana"), "unknown codes degrade to no-type")
	assert.Equal(t, "", normalizeMBTI(""))
}
