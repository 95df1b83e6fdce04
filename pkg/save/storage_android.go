//go:build android

package save

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ensureStorageDir gdata 在 Android 上写入 /data/data/{package}/，但不会预先创建目录
func ensureStorageDir() error {
	dir, err := androidDataDir()
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	os.Remove(probe)
	return nil
}

// androidDataDir 从 /proc/self/cmdline 读取包名
func androidDataDir() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := string(bytes.Trim(bytes.SplitN(data, []byte{0}, 2)[0], "\n"))
	if name == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return filepath.Join("/data/data", name), nil
}
