package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerPreservesMessageOrder(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("first %d", 1)
	logger.Printf("second %d", 2)

	output := logger.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "first 1", output[0].Message)
	assert.Equal(t, "second 2", output[1].Message)
	assert.False(t, output[1].Time.Before(output[0].Time))
}

func TestCapturingLoggerOutputIsACopy(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("only message")

	output := logger.Output()
	logger.Printf("later message")
	assert.Len(t, output, 1)
	assert.Len(t, logger.Output(), 2)
}

func TestCapturedOutputDumpUsesPrefix(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("hello")

	var buf bytes.Buffer
	logger.Output().Dump(&buf, "    DEBUG ")
	assert.Contains(t, buf.String(), "    DEBUG [")
	assert.Contains(t, buf.String(), "] hello\n")
}
