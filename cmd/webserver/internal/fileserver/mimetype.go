package fileserver

import "path/filepath"

const (
	// DefaultContentType is used for extensions missing from the table.
	DefaultContentType = "application/octet-stream"
	// LegacyDefaultContentType is the misspelled default emitted by older
	// releases. It is only used when legacy content types are enabled.
	LegacyDefaultContentType = "application/octed-stream"
)

var contentTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".txt":  "text/plain",
	".py":   "text/plain",
	".css":  "text/css",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".png":  "image/png",
	".bmp":  "image/bmp",
	".xml":  "text/xml",
	".xsl":  "text/xml",
}

// ContentType infers a content type from the extension of name. Matching is
// case sensitive: "a.HTML" is not HTML.
func ContentType(name string, legacy bool) string {
	if ct, ok := contentTypes[filepath.Ext(name)]; ok {
		return ct
	}
	if legacy {
		return LegacyDefaultContentType
	}
	return DefaultContentType
}
