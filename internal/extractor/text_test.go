package extractor

import (
	"strings"
	"testing"
)

func TestTextExtractor_FormFeedPaging(t *testing.T) {
	input := "page one text\fpage two text\fpage three text"
	pages, err := (&TextExtractor{}).Extract(strings.NewReader(input), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, want := range []string{"page one text", "page two text", "page three text"} {
		if pages[i].Number != i+1 {
			t.Errorf("page %d: expected number %d, got %d", i, i+1, pages[i].Number)
		}
		if pages[i].Text != want {
			t.Errorf("page %d: expected %q, got %q", i, want, pages[i].Text)
		}
	}
}

func TestTextExtractor_NoFormFeedsSinglePage(t *testing.T) {
	pages, err := (&TextExtractor{}).Extract(strings.NewReader("just one page\nwith two lines"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("expected a single page numbered 1, got %+v", pages)
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	pages, err := (&TextExtractor{}).Extract(strings.NewReader(""), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages for empty input, got %d", len(pages))
	}
}

func TestTextExtractor_BlankPagePreserved(t *testing.T) {
	pages, err := (&TextExtractor{}).Extract(strings.NewReader("a\f\fb"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[1].Text != "" || pages[1].Number != 2 {
		t.Errorf("expected blank page 2 to be preserved, got %+v", pages[1])
	}
}
