// Package testutils provides simplified testing utilities and helper functions
package testutils

import (
	"testing"
	"time"
)

// SettleTimeout is the default bound for waiting on task settlement in tests
const SettleTimeout = 5 * time.Second

// WaitSettled fails the test if ch does not close within timeout
func WaitSettled(t *testing.T, ch <-chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal("task did not settle in time")
	}
}
