package process

import "testing"

// Only PIDs that cannot name a live process are safe here: pid 0 would signal
// the test's own process group.
func TestKillProcessGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "zero is ignored", pid: 0},
		{name: "negative is ignored", pid: -42},
		{name: "missing process", pid: 999999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			KillProcessGroup(tt.pid)
		})
	}
}
