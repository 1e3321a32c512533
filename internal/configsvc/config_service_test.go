package configsvc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testConfig struct {
	Method     string `json:"method"`
	Brightness int    `json:"brightness"`
	Legacy     bool   `json:"legacy,omitempty"`
}

var testDefault = testConfig{Method: "auto", Brightness: 100}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.yml")
	require.NoError(t, os.WriteFile(path, []byte("brightness: 50\n"), 0o644))

	cfg, err := Load(path, testDefault)
	require.NoError(t, err)
	assert.Equal(t, testConfig{Method: "auto", Brightness: 50}, cfg)

	require.NoError(t, os.WriteFile(path, []byte("brightness: [\n"), 0o644))
	_, err = Load(path, testDefault)
	assert.Error(t, err)
}

func TestRegisterWriteable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "badge.yml")

	cfg, created, err := RegisterWriteable(path, testDefault)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, testDefault, cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "brightness: 100\nmethod: auto\n", string(data))

	require.NoError(t, os.WriteFile(path, []byte("method: libusb\n"), 0o644))
	cfg, created, err = RegisterWriteable(path, testDefault)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "libusb", cfg.Method)
}

func TestRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.yml")
	require.NoError(t, os.WriteFile(path, []byte("brightness: 25\n"), 0o644))

	svc := New(zap.NewNop(), WithDebounce(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)
	<-svc.Ready()

	changes := make(chan testConfig, 4)
	cfg, err := Register(svc, path, testDefault, func(cfg testConfig, err error) {
		if err == nil {
			changes <- cfg
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Brightness)

	require.NoError(t, os.WriteFile(path, []byte("brightness: 75\n"), 0o644))
	select {
	case cfg := <-changes:
		assert.Equal(t, 75, cfg.Brightness)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}
