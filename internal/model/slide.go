package model

// Slide is one page of an extraction document as returned by the PDF
// extraction service. The whole document lives in memory for the duration
// of a review session and is never persisted.
type Slide struct {
	Title              string   `json:"slide_title"`
	Text               string   `json:"slide_text"`
	Charts             []Chart  `json:"charts"`
	Tables             []Table  `json:"tables"`
	Images             []string `json:"images"`
	Media              []Media  `json:"media"`
	Notes              string   `json:"notes"`
	AdditionalElements string   `json:"additional_elements"`
	ImageBase64        string   `json:"image_base64"`
}

type Chart struct {
	Title string            `json:"chart_title"`
	Type  string            `json:"chart_type"`
	Notes string            `json:"chart_notes"`
	Data  map[string]string `json:"chart_data"`
}

type Table struct {
	Title   string     `json:"table_title"`
	Headers []string   `json:"table_headers"`
	Rows    [][]string `json:"table_rows"`
}

type Media struct {
	Type        string `json:"media_type"`
	Description string `json:"media_description"`
}
