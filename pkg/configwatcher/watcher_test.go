package configwatcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campus_link_backend/internal/config"
	"campus_link_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeWatchedConfig(t *testing.T, path, port string) {
	t.Helper()
	content := fmt.Sprintf(`server:
  port: "%s"
  mode: debug
jwt:
  secret: watcher-test-secret
  expire_hours: 1
storage:
  type: minio
`, port)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatchConfigReloadsAfterWrite(t *testing.T) {
	logger.Log = zap.NewNop()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	writeWatchedConfig(t, cfgPath, "8080")

	reloaded := make(chan *config.Config, 1)
	go WatchConfig(cfgPath, nil, func(cfg interface{}) {
		if c, ok := cfg.(*config.Config); ok {
			select {
			case reloaded <- c:
			default:
			}
		}
	})

	// let the watcher register before mutating the file
	time.Sleep(200 * time.Millisecond)

	writeWatchedConfig(t, cfgPath, "9090")
	// a second write inside the debounce window must re-arm, not wedge
	time.Sleep(100 * time.Millisecond)
	writeWatchedConfig(t, cfgPath, "9091")

	select {
	case cfg := <-reloaded:
		require.Equal(t, "9091", cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload did not fire after file writes")
	}
}
