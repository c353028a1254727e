package newick

import (
	"io"
	"strconv"

	"github.com/phylokit/phylokit/internal/format"
	"github.com/phylokit/phylokit/internal/source"
	"github.com/phylokit/phylokit/tree"
)

// Open parses the Newick file at path. The file handle is released before
// Open returns, success or failure.
func Open[N tree.ID, L tree.Length](path string, opts Options) (*tree.Tree[N, L], error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return parse[N, L](src, opts)
}

// ParseBytes parses an in-memory Newick document.
func ParseBytes[N tree.ID, L tree.Length](data []byte, opts Options) (*tree.Tree[N, L], error) {
	src, err := source.NewBytes(data)
	if err != nil {
		return nil, err
	}
	return parse[N, L](src, opts)
}

// ParseString parses an in-memory Newick string.
func ParseString[N tree.ID, L tree.Length](s string, opts Options) (*tree.Tree[N, L], error) {
	return ParseBytes[N, L]([]byte(s), opts)
}

// lexer states. Comments remember the state to resume via parser.resume.
type state uint8

const (
	stateNormal state = iota
	stateLength
	stateLabel       // bare label
	stateQuotedLabel // label delimited by matching single or double quotes
	stateComment
	stateDone // semicolon consumed; only whitespace/comments may follow
)

type parser[N tree.ID, L tree.Length] struct {
	t    *tree.Tree[N, L]
	curr N

	st     state
	resume state // state to restore when a comment closes
	quote  byte  // closing delimiter of the quoted label being read
	tok    []byte
	offset int64 // absolute input offset of the byte being processed

	storeLabels  bool
	storeLengths bool
}

// parse drives the state machine over successive chunks from src.
func parse[N tree.ID, L tree.Length](src source.Source, opts Options) (*tree.Tree[N, L], error) {
	t := tree.New[N, L](tree.Config{
		StoreLabels:  opts.StoreLabels,
		StoreLengths: opts.StoreLengths,
		Reserve:      opts.Reserve,
	})
	root, err := t.AddChild(tree.NullID[N]())
	if err != nil {
		return nil, err
	}
	p := &parser[N, L]{
		t:            t,
		curr:         root,
		storeLabels:  opts.StoreLabels,
		storeLengths: opts.StoreLengths,
	}

	for {
		chunk, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(chunk); {
			consumed, err := p.step(chunk[i])
			if err != nil {
				return nil, err
			}
			if consumed {
				i++
				p.offset++
			}
		}
	}
	return p.finish()
}

// step processes one byte. A false return means the byte was not consumed
// and must be reprocessed in the new state; this is how token-terminating
// delimiters are handed back to stateNormal without any index arithmetic,
// so tokens spanning chunk boundaries need no special casing.
func (p *parser[N, L]) step(b byte) (bool, error) {
	switch p.st {
	case stateComment:
		if b == format.CommentEnd {
			p.st = p.resume
		}
		return true, nil

	case stateQuotedLabel:
		// Everything up to the matching quote is literal; the closing
		// quote itself is kept in the stored label (reference behavior).
		if p.storeLabels {
			p.tok = append(p.tok, b)
		}
		if b == p.quote {
			if p.storeLabels {
				p.t.SetLabel(p.curr, string(p.tok))
			}
			p.st = stateNormal
		}
		return true, nil

	case stateLabel:
		if format.IsLabelEnd(b) {
			if p.storeLabels {
				p.t.SetLabel(p.curr, string(trimSpaces(p.tok)))
			}
			p.st = stateNormal
			return false, nil
		}
		if p.storeLabels {
			p.tok = append(p.tok, b)
		}
		return true, nil

	case stateLength:
		if format.IsLengthEnd(b) {
			if err := p.finishLength(); err != nil {
				return false, err
			}
			p.st = stateNormal
			return false, nil
		}
		if b == format.CommentStart {
			p.resume = stateLength
			p.st = stateComment
			return true, nil
		}
		if format.IsSpace(b) {
			return true, nil
		}
		if p.storeLengths {
			p.tok = append(p.tok, b)
		}
		return true, nil

	case stateDone:
		if format.IsSpace(b) {
			return true, nil
		}
		if b == format.CommentStart {
			p.resume = stateDone
			p.st = stateComment
			return true, nil
		}
		return false, malformedf(p.offset, "trailing content %q after the terminating semicolon", b)

	default: // stateNormal
		return p.stepNormal(b)
	}
}

func (p *parser[N, L]) stepNormal(b byte) (bool, error) {
	null := tree.NullID[N]()
	switch {
	case format.IsSpace(b):
		return true, nil

	case b == format.SubtreeStart:
		if p.curr == null {
			return false, malformedf(p.offset, "'(' with no open node")
		}
		child, err := p.t.AddChild(p.curr)
		if err != nil {
			return false, err
		}
		p.curr = child
		return true, nil

	case b == format.SubtreeEnd:
		if p.curr == null {
			return false, malformedf(p.offset, "unbalanced ')'")
		}
		p.curr = p.t.Parent(p.curr)
		return true, nil

	case b == format.Sibling:
		if p.curr == null || p.t.IsRoot(p.curr) {
			return false, malformedf(p.offset, "',' outside a descendant list")
		}
		sibling, err := p.t.AddChild(p.t.Parent(p.curr))
		if err != nil {
			return false, err
		}
		p.curr = sibling
		return true, nil

	case b == format.Terminal:
		if p.curr != p.t.Root() {
			return false, malformedf(p.offset, "';' with unbalanced parentheses")
		}
		p.st = stateDone
		return true, nil

	case b == format.LengthStart:
		if p.curr == null {
			return false, malformedf(p.offset, "':' with no open node")
		}
		p.tok = p.tok[:0]
		p.st = stateLength
		return true, nil

	case b == format.CommentStart:
		p.resume = stateNormal
		p.st = stateComment
		return true, nil

	case b == format.SingleQuote || b == format.DoubleQuote:
		if p.curr == null {
			return false, malformedf(p.offset, "quoted label with no open node")
		}
		p.quote = b
		p.tok = p.tok[:0]
		p.st = stateQuotedLabel
		return true, nil

	default:
		if p.curr == null {
			return false, malformedf(p.offset, "label byte %q with no open node", b)
		}
		p.tok = p.tok[:0]
		p.st = stateLabel
		return false, nil // reprocess as the first label byte
	}
}

// finishLength parses the accumulated length token onto the current node.
// An empty token (":" directly followed by a delimiter) stores 0, matching
// the reference behavior; a non-empty token must be a valid float.
func (p *parser[N, L]) finishLength() error {
	if !p.storeLengths {
		return nil
	}
	if len(p.tok) == 0 {
		p.t.SetEdgeLength(p.curr, 0)
		return nil
	}
	bits := 64
	var l L
	if _, ok := any(l).(float32); ok {
		bits = 32
	}
	v, err := strconv.ParseFloat(string(p.tok), bits)
	if err != nil {
		return malformedf(p.offset, "invalid edge length %q", p.tok)
	}
	p.t.SetEdgeLength(p.curr, L(v))
	return nil
}

// finish validates terminal state once the input is exhausted.
func (p *parser[N, L]) finish() (*tree.Tree[N, L], error) {
	switch {
	case p.st == stateDone:
		return p.t, nil
	case p.st == stateComment && p.resume == stateDone:
		return p.t, nil
	default:
		return nil, malformedf(p.offset, "end of input before the terminating semicolon")
	}
}

// trimSpaces removes leading and trailing blanks from a bare label.
func trimSpaces(tok []byte) []byte {
	start, end := 0, len(tok)
	for start < end && (tok[start] == ' ' || tok[start] == '\t') {
		start++
	}
	for end > start && (tok[end-1] == ' ' || tok[end-1] == '\t') {
		end--
	}
	return tok[start:end]
}
