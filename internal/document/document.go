package document

// Page is one page of already-extracted document text. Extraction and
// decoding happen upstream; the core only ever sees plain text.
type Page struct {
	Number int    // 1-based page number
	Text   string // extracted text, may be empty for blank pages
}

// SectionRecord is one node of the document hierarchy, built from a TOC line.
// Level and ParentID are derived from SectionID and never supplied directly.
type SectionRecord struct {
	DocTitle  string `json:"doc_title,omitempty"`
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Page      int    `json:"page"`
	Level     int    `json:"level"`
	ParentID  string `json:"parent_id,omitempty"`
	FullPath  string `json:"full_path"`
}

// ContentBlock is the accumulated body text for one section id.
// StartPage and EndPage are the inclusive page range that contributed text.
type ContentBlock struct {
	SectionID string `json:"section_id"`
	Content   string `json:"content"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
}
