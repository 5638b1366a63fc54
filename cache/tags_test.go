package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagDeterminism(t *testing.T) {
	assert.Equal(t, IdTag("lessons", "abc"), IdTag("lessons", "abc"))
	assert.Equal(t, ParentTag("lessons", "s1"), ParentTag("lessons", "s1"))
	assert.Equal(t, GlobalTag("lessons"), GlobalTag("lessons"))
}

func TestTagDistinctness(t *testing.T) {
	assert.NotEqual(t, IdTag("lessons", "abc"), IdTag("lessons", "def"))
	assert.NotEqual(t, IdTag("lessons", "abc"), IdTag("sections", "abc"))
	assert.NotEqual(t, IdTag("lessons", "abc"), ParentTag("lessons", "abc"))
	assert.NotEqual(t, GlobalTag("lessons"), GlobalTag("sections"))
}
