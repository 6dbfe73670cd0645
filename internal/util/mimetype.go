package util

import "strings"

// mimeTypes maps file extensions (without the dot) to MIME types for the
// download endpoint. The table is intentionally static; anything unknown
// falls back to application/octet-stream.
var mimeTypes = map[string]string{
	// Documents
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	// Media
	"mp4":  "video/mp4",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",

	// Code
	"py":   "text/x-python",
	"txt":  "text/plain",
	"c":    "text/x-c",
	"cpp":  "text/x-c++src",
	"h":    "text/x-c",
	"js":   "text/javascript",
	"java": "text/x-java-source",
	"html": "text/html",
	"jsx":  "text/jsx",
	"css":  "text/css",
	"rs":   "text/rust",
	"go":   "text/x-go",
	"rb":   "text/x-ruby",
	"php":  "text/x-php",
	"sql":  "text/x-sql",
	"xml":  "text/xml",
	"json": "application/json",
	"yaml": "text/yaml",
	"md":   "text/markdown",

	// Archives
	"zip": "application/zip",
	"rar": "application/x-rar-compressed",
	"tar": "application/x-tar",
	"7z":  "application/x-7z-compressed",
}

// MimeTypeForExtension resolves a MIME type from a file extension, case
// insensitively, defaulting to a generic binary type.
func MimeTypeForExtension(ext string) string {
	if mt, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return "application/octet-stream"
}
