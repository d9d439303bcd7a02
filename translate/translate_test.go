package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("opcode LDA unknown", From("opcode %v unknown", "LDA"))
	assert.Equal("line 12 'RSUB'", From("line %v '%v'", "12", "RSUB"))
}
