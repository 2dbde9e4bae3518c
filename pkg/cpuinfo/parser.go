package cpuinfo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/participle/v2"
)

// DefaultPath is where Linux exposes the board's info file.
const DefaultPath = "/proc/cpuinfo"

// ErrNotFound is returned when the info file does not exist, typically
// because the program is not running on the target board.
var ErrNotFound = errors.New("system info source not found")

// Parser reads colon-delimited system info files.
type Parser struct {
	parser *participle.Parser[Document]
}

// NewParser creates a new info file parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Document](
		participle.Lexer(CPUInfoLexer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses an info file from a reader
func (p *Parser) Parse(r io.Reader) (Info, error) {
	doc, err := p.parser.Parse("", r)
	if err != nil {
		return Info{}, fmt.Errorf("parse error: %w", err)
	}
	return extract(doc), nil
}

// ParseString parses an info file from a string
func (p *Parser) ParseString(input string) (Info, error) {
	doc, err := p.parser.ParseString("", input)
	if err != nil {
		return Info{}, fmt.Errorf("parse error: %w", err)
	}
	return extract(doc), nil
}

// ParseFile parses an info file from a file path. A missing file is
// reported as ErrNotFound.
func (p *Parser) ParseFile(filename string) (Info, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return Info{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
