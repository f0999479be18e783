package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintJSON(&buf, map[string]int{"port": 8080}))
	assert.Equal(t, "{\n\t\"port\": 8080\n}\n", buf.String())
}

func TestPrintJSONUnsupported(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, PrintJSON(&buf, make(chan int)))
	assert.Empty(t, buf.String())
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", Redact(""))
	assert.Equal(t, "********", Redact("hunter2"))
}
