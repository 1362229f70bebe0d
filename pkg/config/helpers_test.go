package config_test

import (
	"os"
	"testing"
)

// unset removes key for the duration of the test and restores it afterwards.
func unset(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}
