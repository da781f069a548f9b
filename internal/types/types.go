package types

// Match is one located occurrence of a category within an input.
// Start and End are byte offsets into the scanned input (half-open range);
// Line is 1-based and refers to the line containing Start.
type Match struct {
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Text     string `json:"text"`
	Category string `json:"category"`
}
