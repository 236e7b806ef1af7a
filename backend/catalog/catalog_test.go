package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	assert.Len(t, Labs, 19)
	assert.True(t, Contains("Prompt Design in Vertex AI"))
	assert.False(t, Contains("Not a Lab"))
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Names()
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", Labs[0])
}
