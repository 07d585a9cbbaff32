package fileserver

import (
	"testing"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/storage/memory"
)

func TestResolve(t *testing.T) {
	source, err := memory.NewSource("a.txt=hello")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want Target
	}{
		{"/", Target{Kind: Directory, Name: "./"}},
		{"/a.txt", Target{Kind: File, Name: "./a.txt"}},
		{"/missing", Target{Kind: NotFound, Name: "./missing"}},
		{"/a.txt/", Target{Kind: NotFound, Name: "./a.txt/"}},
		{"//", Target{Kind: NotFound, Name: ".//"}},
	}
	for _, tt := range tests {
		if got := Resolve(source, tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}
