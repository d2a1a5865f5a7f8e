package logging

import (
	"bytes"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestSetup(t *testing.T) {
	defer Setup("info", "text", os.Stderr)

	t.Run("writes JSON at requested level", func(t *testing.T) {
		// Prepare
		out := &bytes.Buffer{}

		// Execute
		Setup("warn", "json", out)
		log.Info("hidden")
		log.Warn("shown")

		// Check
		assert.Equal(t, log.WarnLevel, log.GetLevel(), "warn level")
		assert.NotContains(t, out.String(), "hidden", "info filtered")
		assert.Contains(t, out.String(), `"msg":"shown"`, "json entry")
	})

	t.Run("falls back to info on unknown level", func(t *testing.T) {
		// Execute
		Setup("chatty", "text", &bytes.Buffer{})

		// Check
		assert.Equal(t, log.InfoLevel, log.GetLevel(), "info level")
	})
}
