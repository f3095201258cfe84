package breakdancer

import "strings"

// Header accumulates metadata from the #-prefixed lines at the top of a
// BreakDancer output file.
type Header struct {
	Software string
	Command  []string
	// Sections holds the remaining key/value header blocks, keyed by
	// the line's leading token (e.g. a BAM path), each mapping
	// sub-field keys to values.
	Sections map[string]map[string]string
}

// NewHeader creates an empty header.
func NewHeader() *Header {
	return &Header{Sections: make(map[string]map[string]string)}
}

// ParseLine consumes one header line (leading # still present).
// #Software: and #Command: lines populate the dedicated fields;
// #Library and #Chr1 lines are recognized but not stored; anything else
// is parsed as "key k1:v1 k2:v2 ..." into Sections.
func (h *Header) ParseLine(line string) error {
	switch {
	case strings.HasPrefix(line, "#Software:"):
		fields := strings.Fields(line)
		if len(fields) > 1 {
			h.Software = fields[1]
		}
	case strings.HasPrefix(line, "#Command:"):
		h.Command = strings.Fields(line)[1:]
	case strings.HasPrefix(line, "#Library"), strings.HasPrefix(line, "#Chr1"):
		// Column-name and per-library summary lines carry no metadata
		// we keep.
	default:
		fields := strings.Fields(strings.TrimPrefix(line, "#"))
		if len(fields) == 0 {
			return nil
		}
		section := make(map[string]string, len(fields)-1)
		for _, field := range fields[1:] {
			parts := strings.Split(field, ":")
			if len(parts) != 2 {
				return &ParseError{Message: "header field " + field + " is not key:value"}
			}
			section[parts[0]] = parts[1]
		}
		h.Sections[fields[0]] = section
	}
	return nil
}
