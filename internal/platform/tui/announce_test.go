package tui

import "testing"

func TestListenPort(t *testing.T) {
	tests := []struct {
		addr    string
		want    int
		wantErr bool
	}{
		{":23235", 23235, false},
		{"0.0.0.0:2222", 2222, false},
		{"[::1]:22", 22, false},
		{"localhost", 0, true},
		{":ssh", 0, true},
		{":0", 0, true},
		{":70000", 0, true},
	}

	for _, tt := range tests {
		got, err := listenPort(tt.addr)
		if (err != nil) != tt.wantErr {
			t.Errorf("listenPort(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("listenPort(%q) = %d, expected %d", tt.addr, got, tt.want)
		}
	}
}
