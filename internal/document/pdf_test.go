package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingProcess struct {
	calls []string
}

func (p *recordingProcess) Kill()    { p.calls = append(p.calls, "kill") }
func (p *recordingProcess) Cleanup() { p.calls = append(p.calls, "cleanup") }

func TestShutdown(t *testing.T) {
	tests := []struct {
		name         string
		closeBrowser func() error
		want         []string
	}{
		{"closed cleanly", func() error { return nil }, []string{"cleanup"}},
		{"close failed", func() error { return errors.New("websocket closed") }, []string{"kill", "cleanup"}},
		{"never connected", nil, []string{"kill", "cleanup"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &recordingProcess{}
			shutdown(proc, tt.closeBrowser, zap.NewNop())
			assert.Equal(t, tt.want, proc.calls)
		})
	}
}
