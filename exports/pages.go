package exports

import (
	"io"
	"strings"
)

// Paginate wraps text at width columns, breaking on spaces where possible, and groups lines into pages.
func Paginate(text string, width int, lines int) []string {
	width = max(1, width)
	lines = max(1, lines)

	var wrapped []string
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		wrapped = append(wrapped, wrapLine(line, width)...)
	}

	var pages []string
	for start := 0; start < len(wrapped); start += lines {
		end := min(start+lines, len(wrapped))
		pages = append(pages, strings.Join(wrapped[start:end], "\n"))
	}
	return pages
}

func wrapLine(line string, width int) []string {
	var ret []string
	for len(line) > width {
		cut := strings.LastIndexByte(line[:width+1], ' ')
		if cut <= 0 {
			ret = append(ret, line[:width])
			line = line[width:]
			continue
		}
		ret = append(ret, strings.TrimRight(line[:cut], " "))
		line = strings.TrimLeft(line[cut:], " ")
	}
	return append(ret, line)
}

// Pages writes pages separated by form feeds.
func Pages(w io.Writer, pages []string) error {
	for i, page := range pages {
		if i > 0 {
			if _, err := io.WriteString(w, "\f"); err != nil {
				return wrap(err)
			}
		}
		if _, err := io.WriteString(w, page+"\n"); err != nil {
			return wrap(err)
		}
	}
	return nil
}
