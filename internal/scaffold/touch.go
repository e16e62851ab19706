package scaffold

import (
	"fmt"
	"os"
	"time"
)

// Touch creates path as an empty file if it does not exist. If it does, its
// access and modification times are set to now and its content is left alone.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("touching %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("touching %s: %w", path, err)
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("touching %s: %w", path, err)
	}
	return nil
}
