// Package retrieval turns uploaded documents into embedded text chunks
// and answers similarity queries over them.
package retrieval

import "strings"

// Chunking defaults, measured in runes.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// chunkSeparators are tried in order; the empty separator means a hard
// cut at the size limit.
var chunkSeparators = []string{"\n\n", "\n", " ", ""}

// Chunker splits text into overlapping windows, preferring paragraph
// and line boundaries over mid-word cuts.
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker returns a Chunker with the default window geometry.
func NewChunker() Chunker {
	return Chunker{Size: DefaultChunkSize, Overlap: DefaultChunkOverlap}
}

// Split breaks text into chunks of at most Size runes with Overlap
// runes carried between neighbors. Whitespace-only chunks are dropped.
func (c Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return c.split(text, chunkSeparators)
}

func (c Chunker) split(text string, seps []string) []string {
	sep := seps[len(seps)-1]
	rest := []string{}
	for i, s := range seps {
		if s == "" {
			sep = ""
			break
		}
		if strings.Contains(text, s) {
			sep = s
			rest = seps[i+1:]
			break
		}
	}

	var splits []string
	if sep == "" {
		splits = hardCut(text, c.Size)
	} else {
		splits = strings.Split(text, sep)
	}

	// Oversized splits recurse with finer separators; the rest merge
	// into windows.
	var chunks []string
	var pending []string
	for _, s := range splits {
		if runeLen(s) <= c.Size {
			pending = append(pending, s)
			continue
		}
		chunks = append(chunks, c.merge(pending, sep)...)
		pending = nil
		chunks = append(chunks, c.split(s, rest)...)
	}
	chunks = append(chunks, c.merge(pending, sep)...)
	return chunks
}

// merge packs consecutive splits into chunks no larger than Size,
// re-seeding each new chunk with the tail of the previous one.
func (c Chunker) merge(splits []string, sep string) []string {
	var chunks []string
	var current []string
	total := 0
	sepLen := runeLen(sep)

	flush := func() {
		if joined := strings.TrimSpace(strings.Join(current, sep)); joined != "" {
			chunks = append(chunks, joined)
		}
	}

	for _, s := range splits {
		l := runeLen(s)
		if len(current) > 0 && total+sepLen+l > c.Size {
			flush()
			// Drop from the front until within the overlap budget.
			for len(current) > 0 && (total > c.Overlap || total+sepLen+l > c.Size) {
				total -= runeLen(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
			}
		}
		if len(current) > 0 {
			total += sepLen
		}
		current = append(current, s)
		total += l
	}
	flush()
	return chunks
}

// hardCut slices text into size-rune pieces with no boundary hints.
func hardCut(text string, size int) []string {
	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}
