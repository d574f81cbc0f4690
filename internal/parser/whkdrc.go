// Package parser turns whkdrc text into an entity.Whkdrc document.
//
// The grammar is line oriented but whitespace, blank lines and '#' comments are
// accepted between any two tokens:
//
//	.shell pwsh
//	alt + n [
//	    Firefox       : echo "hello firefox"
//	    Google Chrome : echo "hello chrome"
//	]
//	alt + h : komorebic focus left
//	alt + r ; resize
//	resize > h : komorebic resize-axis horizontal decrease
//	resize > escape ; default
//
// A command runs to the end of the line, a '#' or a ';'.
package parser

import (
	"strconv"
	"strings"

	"github.com/bnema/whkd/internal/domain/entity"
)

const shellDirective = ".shell"

const eof rune = -1

// Parse parses a complete whkdrc. On failure it returns a *SyntaxError and no document.
func Parse(src string) (*entity.Whkdrc, error) {
	p := &docParser{src: []rune(src), line: 1, col: 1}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return doc, nil
}

type position struct {
	pos, line, col int
}

type docParser struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (p *docParser) parseDocument() (*entity.Whkdrc, error) {
	doc := &entity.Whkdrc{Shell: entity.DefaultShell}

	p.skipTrivia()
	if p.hasWord(shellDirective) {
		shell, err := p.parseShell()
		if err != nil {
			return nil, err
		}
		doc.Shell = shell
	}

	for {
		p.skipTrivia()
		if p.peek() == eof {
			break
		}
		if err := p.parseEntry(doc); err != nil {
			return nil, err
		}
	}

	if len(doc.Bindings) == 0 {
		return nil, p.errorf("hotkey binding")
	}
	return doc, nil
}

func (p *docParser) parseShell() (entity.Shell, error) {
	for range shellDirective {
		p.advance()
	}
	p.skipTrivia()
	start := p.mark()
	name := p.scanIdent()
	shell, err := entity.ParseShell(name)
	if err != nil {
		p.reset(start)
		expected := make([]string, 0, len(entity.Shells()))
		for _, s := range entity.Shells() {
			expected = append(expected, strconv.Quote(string(s)))
		}
		return "", p.errorf(expected...)
	}
	return shell, nil
}

// parseEntry parses one direct binding or one process block.
func (p *docParser) parseEntry(doc *entity.Whkdrc) error {
	first, err := p.parseKeyToken()
	if err != nil {
		return err
	}
	p.skipTrivia()

	mode := entity.DefaultMode
	scoped := false
	if p.peek() == '>' {
		if !isIdent(first) {
			return p.errorf(`"+"`, `":"`, `";"`, `"["`)
		}
		mode = entity.ModeName(first)
		scoped = true
		p.advance()
		p.skipTrivia()
		if first, err = p.parseKeyToken(); err != nil {
			return err
		}
		p.skipTrivia()
	}

	keys := []string{first}
	for p.peek() == '+' {
		p.advance()
		p.skipTrivia()
		tok, err := p.parseKeyToken()
		if err != nil {
			return err
		}
		keys = append(keys, tok)
		p.skipTrivia()
	}

	switch p.peek() {
	case ':':
		p.advance()
		cmd, err := p.parseCommand()
		if err != nil {
			return err
		}
		action, err := p.parseOptionalModeChange()
		if err != nil {
			return err
		}
		doc.Bindings = append(doc.Bindings, entity.HotkeyBinding{
			Mode: mode, Keys: keys, Command: cmd, Action: action,
		})
	case ';':
		p.advance()
		action, err := p.parseModeChange()
		if err != nil {
			return err
		}
		doc.Bindings = append(doc.Bindings, entity.HotkeyBinding{
			Mode: mode, Keys: keys, Action: action,
		})
	case '[':
		if scoped {
			return p.errorf(`"+"`, `":"`, `";"`)
		}
		p.advance()
		app, err := p.parseProcessBlock(keys)
		if err != nil {
			return err
		}
		doc.AppBindings = append(doc.AppBindings, app)
	default:
		return p.errorf(`"+"`, `":"`, `";"`, `"["`)
	}
	return nil
}

func (p *docParser) parseProcessBlock(keys []string) (entity.AppBinding, error) {
	app := entity.AppBinding{Keys: keys}
	for {
		p.skipTrivia()
		if p.peek() == ']' && len(app.Bindings) > 0 {
			p.advance()
			return app, nil
		}
		name, err := p.parseProcessName()
		if err != nil {
			return app, err
		}
		p.advance() // ':'
		cmd, err := p.parseCommand()
		if err != nil {
			return app, err
		}
		app.Bindings = append(app.Bindings, entity.HotkeyBinding{
			Mode:        entity.DefaultMode,
			Keys:        append([]string(nil), keys...),
			Command:     cmd,
			ProcessName: name,
		})
	}
}

// parseProcessName reads free text up to ':' and collapses internal whitespace.
func (p *docParser) parseProcessName() (string, error) {
	start := p.mark()
	var b strings.Builder
	for {
		r := p.peek()
		if r == ':' {
			break
		}
		if r == eof || r == '\n' || r == '#' || r == ';' || r == '[' || r == ']' {
			name := strings.TrimSpace(b.String())
			if name == "" {
				p.reset(start)
				if p.peek() == eof {
					return "", p.errorf("process name", `"]"`)
				}
				return "", p.errorf("process name")
			}
			return "", p.errorf(`":"`)
		}
		b.WriteRune(r)
		p.advance()
	}
	name := strings.Join(strings.Fields(b.String()), " ")
	if name == "" {
		p.reset(start)
		return "", p.errorf("process name")
	}
	return name, nil
}

// parseCommand reads the command text after ':'.
func (p *docParser) parseCommand() (string, error) {
	p.skipTrivia()
	var b strings.Builder
	for {
		r := p.peek()
		if r == eof || r == '\n' || r == '#' || r == ';' {
			break
		}
		b.WriteRune(r)
		p.advance()
	}
	cmd := strings.TrimSpace(b.String())
	if cmd == "" {
		return "", p.errorf("command")
	}
	return cmd, nil
}

func (p *docParser) parseOptionalModeChange() (entity.ModeAction, error) {
	start := p.mark()
	p.skipTrivia()
	if p.peek() != ';' {
		p.reset(start)
		return entity.NoModeChange(), nil
	}
	p.advance()
	return p.parseModeChange()
}

func (p *docParser) parseModeChange() (entity.ModeAction, error) {
	p.skipTrivia()
	name := p.scanIdent()
	if name == "" {
		return entity.ModeAction{}, p.errorf("mode name", `"default"`)
	}
	return entity.SwitchMode(name), nil
}

func (p *docParser) parseKeyToken() (string, error) {
	if tok := p.scanIdent(); tok != "" {
		return tok, nil
	}
	if tok := p.scanDigits(); tok != "" {
		return tok, nil
	}
	return "", p.errorf("key")
}

func (p *docParser) scanIdent() string {
	r := p.peek()
	if !isIdentStart(r) {
		return ""
	}
	start := p.pos
	for isIdentStart(p.peek()) || isDigit(p.peek()) {
		p.advance()
	}
	return string(p.src[start:p.pos])
}

func (p *docParser) scanDigits() string {
	start := p.pos
	for isDigit(p.peek()) {
		p.advance()
	}
	return string(p.src[start:p.pos])
}

// skipTrivia skips whitespace, newlines and comments.
func (p *docParser) skipTrivia() {
	for {
		r := p.peek()
		switch {
		case r == '#':
			for r := p.peek(); r != eof && r != '\n'; r = p.peek() {
				p.advance()
			}
		case r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v' || r == '\uFEFF':
			p.advance()
		default:
			return
		}
	}
}

func (p *docParser) hasWord(word string) bool {
	w := []rune(word)
	if p.pos+len(w) > len(p.src) {
		return false
	}
	for i, r := range w {
		if p.src[p.pos+i] != r {
			return false
		}
	}
	return true
}

func (p *docParser) peek() rune {
	if p.pos >= len(p.src) {
		return eof
	}
	return p.src[p.pos]
}

func (p *docParser) advance() {
	if p.pos >= len(p.src) {
		return
	}
	if p.src[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

func (p *docParser) mark() position {
	return position{pos: p.pos, line: p.line, col: p.col}
}

func (p *docParser) reset(m position) {
	p.pos, p.line, p.col = m.pos, m.line, m.col
}

func (p *docParser) errorf(expected ...string) *SyntaxError {
	found := "end of input"
	if r := p.peek(); r != eof {
		found = strconv.QuoteRune(r)
	}
	return &SyntaxError{Line: p.line, Column: p.col, Expected: expected, Found: found}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdent(s string) bool {
	return s != "" && isIdentStart(rune(s[0]))
}
