package fileserver

import "testing"

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"./index.html", "text/html"},
		{"./index.htm", "text/html"},
		{"./notes.txt", "text/plain"},
		{"./script.py", "text/plain"},
		{"./style.css", "text/css"},
		{"./photo.jpg", "image/jpeg"},
		{"./photo.jpeg", "image/jpeg"},
		{"./anim.gif", "image/gif"},
		{"./logo.png", "image/png"},
		{"./icon.bmp", "image/bmp"},
		{"./feed.xml", "text/xml"},
		{"./transform.xsl", "text/xml"},
		{"./archive.bin", DefaultContentType},
		{"./README", DefaultContentType},
		{"./INDEX.HTML", DefaultContentType},
		{"./dir.d/file", DefaultContentType},
	}
	for _, tt := range tests {
		if got := ContentType(tt.name, false); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestContentTypeLegacy(t *testing.T) {
	if got := ContentType("./archive.bin", true); got != "application/octed-stream" {
		t.Errorf("got %q, want legacy default", got)
	}
	if got := ContentType("./index.html", true); got != "text/html" {
		t.Errorf("got %q, want text/html", got)
	}
}
