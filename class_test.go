package linebreak

import "testing"

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{XX, "XX"},
		{AL, "AL"},
		{ZWJ, "ZWJ"},
		{Class(-1), "XX"},
		{Class(len(classNames) + 10), "XX"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
