package diag

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStd_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStd(log.New(&buf, "gan: ", 0))

	logger.Debugf("hidden %d", 1)
	logger.Infof("ready")
	logger.Warnf("norm = %.3f > %.3f", 2.5, 1.0)
	logger.Errorf("boom")

	assert.Equal(t, "gan: [INFO] ready\ngan: [WARN] norm = 2.500 > 1.000\ngan: [ERROR] boom\n", buf.String())

	buf.Reset()
	logger.EnableDebug(true).Debugf("shown %d", 2)
	assert.Equal(t, "gan: [DEBUG] shown 2\n", buf.String())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var logger Logger = &r

	logger.Warnf("a %s", "b")
	logger.Infof("c")
	logger.Warnf("d")

	assert.Equal(t, []string{"a b", "d"}, r.Messages("WARN"))
	assert.Equal(t, []string{"c"}, r.Messages("INFO"))
	assert.Empty(t, r.Messages("ERROR"))
	assert.Len(t, r.Entries, 3)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Warnf("ignored %v", nil)
	})
}
