package chess

// Tag names read by the assembler when synthesizing titles and start positions.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	FENTag    = "FEN"
)

// IsUnknownTagValue reports whether a tag value is a PGN placeholder.
func IsUnknownTagValue(value string) bool {
	switch value {
	case "", "?", "??", "-", "????.??.??":
		return true
	}
	return false
}
