package assembler

import (
	"strings"

	"github.com/lgbarn/pgn-delta/internal/chess"
)

// DefaultTitle is used when the tags name neither players nor an event.
const DefaultTitle = "Untitled game"

// Title synthesizes a display title: "White vs Black" when both players
// are known, else the event name.
func Title(tags map[string]string) string {
	white, black := known(tags[chess.WhiteTag]), known(tags[chess.BlackTag])
	switch {
	case white != "" && black != "":
		return white + " vs " + black
	case known(tags[chess.EventTag]) != "":
		return known(tags[chess.EventTag])
	default:
		return DefaultTitle
	}
}

// Description joins the known event, site, date and result.
func Description(tags map[string]string) string {
	var parts []string
	for _, name := range []string{chess.EventTag, chess.SiteTag, chess.DateTag, chess.ResultTag} {
		if value := known(tags[name]); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, ", ")
}

// known returns value trimmed, or "" for placeholders and the unfinished
// result marker.
func known(value string) string {
	value = strings.TrimSpace(value)
	if chess.IsUnknownTagValue(value) || value == "*" {
		return ""
	}
	return value
}
