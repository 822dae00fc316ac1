package main

import "testing"

func TestContentType(t *testing.T) {
	m := NewMimeClassifier(DefaultMimeTypes())
	for ext, want := range DefaultMimeTypes() {
		ExpectEqual(t, want, m.ContentType("file."+ext))
	}

	cases := map[string]string{
		"INDEX.HTML":       "text/html",
		"app.min.js":       "application/javascript",
		"photo.JPeG":       "image/jpeg",
		"archive.tar.gz":   defaultContentType,
		"program.exe":      defaultContentType,
		"Makefile":         defaultContentType,
		"trailing.":        defaultContentType,
		".hidden":          defaultContentType,
		"":                 defaultContentType,
		"dir.d/no_ext":     defaultContentType,
		"dir.d/style.css":  "text/css",
		"favicon.ico":      "image/x-icon",
		"vector.image.svg": "image/svg+xml",
	}
	for name, want := range cases {
		ExpectEqual(t, want, m.ContentType(name))
	}
}

func TestMimeClassifierCopiesTable(t *testing.T) {
	table := MimeTable{"MD": "text/markdown"}
	m := NewMimeClassifier(table)
	table["md"] = "application/x-changed"
	table["wasm"] = "application/wasm"

	ExpectEqual(t, "text/markdown", m.ContentType("README.md"))
	ExpectEqual(t, defaultContentType, m.ContentType("main.wasm"))
}

func TestIsText(t *testing.T) {
	text := []string{"text/html", "text/css", "text/plain", "application/json", "application/xml", "application/javascript"}
	for _, ct := range text {
		if !IsText(ct) {
			t.Errorf("IsText(%q) = false, want true", ct)
		}
	}
	binary := []string{"image/png", "image/svg+xml", "image/x-icon", defaultContentType, "application/jsonx", ""}
	for _, ct := range binary {
		if IsText(ct) {
			t.Errorf("IsText(%q) = true, want false", ct)
		}
	}
}
