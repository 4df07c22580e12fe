package bench

import "os"

func mkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
