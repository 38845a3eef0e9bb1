package rpt

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// ParseFile reads a placement report from a file and feeds its events to rcv.
func ParseFile(filename string, rcv EventReceiver) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parse(filename, file, rcv)
}

// Parse reads a placement report from r and feeds its events to rcv.
// Unrecognized words (module references, shape and layer fields, values)
// are skipped; the event vocabulary may be a subset of what a report
// carries. Parsing stops at the first receiver error.
func Parse(r io.Reader, rcv EventReceiver) error {
	return parse("", r, rcv)
}

func parse(filename string, r io.Reader, rcv EventReceiver) error {
	lex, err := ReportLexer.Lex(filename, r)
	if err != nil {
		return fmt.Errorf("failed to lex report: %w", err)
	}

	p := &parser{
		lex:     lex,
		symbols: ReportLexer.Symbols(),
	}
	return p.run(rcv)
}

type parser struct {
	lex     lexer.Lexer
	symbols map[string]lexer.TokenType
}

// next returns the next significant token, skipping comments and whitespace.
func (p *parser) next() (lexer.Token, error) {
	comment := p.symbols["Comment"]
	space := p.symbols["Whitespace"]
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return tok, err
		}
		if tok.Type == comment || tok.Type == space {
			continue
		}
		return tok, nil
	}
}

// number reads the next token and requires it to be a numeric value.
func (p *parser) number(keyword string) (float64, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.EOF() || tok.Type != p.symbols["Number"] {
		return 0, fmt.Errorf("%s: expected number after %q, got %q", tok.Pos, keyword, tok.Value)
	}
	v, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", tok.Pos, tok.Value, err)
	}
	return v, nil
}

// pair reads two numeric arguments for keyword.
func (p *parser) pair(keyword string) (a, b float64, err error) {
	if a, err = p.number(keyword); err != nil {
		return 0, 0, err
	}
	if b, err = p.number(keyword); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (p *parser) run(rcv EventReceiver) error {
	for {
		tok, err := p.next()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if tok.EOF() {
			return nil
		}

		switch tok.Value {
		case "$MODULE":
			err = rcv.StartComponent()
		case "$EndMODULE":
			err = rcv.EndComponent()
		case "$PAD":
			err = rcv.StartPad()
		case "$EndPAD":
			err = rcv.EndPad()
		case "position":
			var x, y float64
			if x, y, err = p.pair("position"); err != nil {
				return err
			}
			err = rcv.Position(x, y)
		case "size":
			var w, h float64
			if w, h, err = p.pair("size"); err != nil {
				return err
			}
			err = rcv.Size(w, h)
		case "drill":
			var d float64
			if d, err = p.number("drill"); err != nil {
				return err
			}
			err = rcv.Drill(d)
		case "orientation":
			var angle float64
			if angle, err = p.number("orientation"); err != nil {
				return err
			}
			err = rcv.Orientation(angle)
		default:
			// Field the dispenser does not consume (reference, shape,
			// layer, attribute...). Skip the word; any numeric arguments
			// it has are skipped the same way on the next iteration.
			continue
		}

		if err != nil {
			return fmt.Errorf("%s: %w", tok.Pos, err)
		}
	}
}
