//go:build !android

package save

// ensureStorageDir 其他平台由 gdata 自行创建目录
func ensureStorageDir() error {
	return nil
}
