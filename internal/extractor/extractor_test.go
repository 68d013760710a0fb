package extractor

import (
	"fmt"
	"testing"
)

func TestForFile_KnownExtensions(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"spec.pdf", "*extractor.PDFExtractor"},
		{"spec.txt", "*extractor.TextExtractor"},
		{"spec.md", "*extractor.MarkdownExtractor"},
		{"spec.markdown", "*extractor.MarkdownExtractor"},
		{"spec.html", "*extractor.HTMLExtractor"},
		{"spec.htm", "*extractor.HTMLExtractor"},
		{"spec.docx", "*extractor.DOCXExtractor"},
		{"SPEC.PDF", "*extractor.PDFExtractor"},
	}
	for _, tc := range cases {
		ext, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", ext); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.filename, tc.want, got)
		}
	}
}

func TestForFile_UnsupportedExtension(t *testing.T) {
	if _, err := ForFile("spec.xlsx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := ForFile("noextension"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.TXT", "c.md", "d.html", "e.docx"} {
		if !IsSupportedExtension(name) {
			t.Errorf("expected %s to be supported", name)
		}
	}
	for _, name := range []string{"a.exe", "b", "c.json"} {
		if IsSupportedExtension(name) {
			t.Errorf("expected %s to be unsupported", name)
		}
	}
}
