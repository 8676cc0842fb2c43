package handlers

import "testing"

func TestMaskDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "user and password",
			dsn:  "root:secret@tcp(localhost:3306)/tripgo?parseTime=true",
			want: "root:****@tcp(localhost:3306)/tripgo?parseTime=true",
		},
		{
			name: "user without password",
			dsn:  "root@tcp(localhost:3306)/tripgo",
			want: "****@tcp(localhost:3306)/tripgo",
		},
		{
			name: "no credentials",
			dsn:  "tcp(localhost:3306)/tripgo",
			want: "tcp(localhost:3306)/tripgo",
		},
		{
			name: "password containing at sign",
			dsn:  "root:p@ss@tcp(localhost:3306)/tripgo",
			want: "root:****@tcp(localhost:3306)/tripgo",
		},
		{
			name: "empty",
			dsn:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskDSN(tt.dsn); got != tt.want {
				t.Fatalf("maskDSN(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}
