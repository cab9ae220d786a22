package env

import "testing"

func TestMarshalMap(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		expected string
	}{
		{
			name:     "empty map",
			vars:     map[string]string{},
			expected: "",
		},
		{
			name:     "stable key order",
			vars:     map[string]string{"B_KEY": "2", "A_KEY": "1", "C_KEY": "3"},
			expected: "A_KEY=1\nB_KEY=2\nC_KEY=3\n",
		},
		{
			name:     "blank entries dropped",
			vars:     map[string]string{"KEY": "value", "EMPTY": "", "": "orphan"},
			expected: "KEY=value\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarshalMap(tt.vars); got != tt.expected {
				t.Errorf("MarshalMap() = %q, want %q", got, tt.expected)
			}
		})
	}
}
