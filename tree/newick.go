package tree

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lengthBits reports the strconv bit size for the length type.
func lengthBits[L Length]() int {
	var l L
	if _, ok := any(l).(float32); ok {
		return 32
	}
	return 64
}

// WriteNewick writes the Newick rendering of the subtree rooted at node:
// children comma-separated inside parentheses for internal nodes, then the
// node's label (when stored) and ":"+length (when stored and non-zero).
// The terminating semicolon is appended only when semicolon is true, so a
// sub-expression can be embedded in a larger rendering.
//
// The walk uses an explicit stack rather than recursion: a deep caterpillar
// tree must not be able to exhaust the call stack.
func (t *Tree[N, L]) WriteNewick(w io.Writer, node N, semicolon bool) error {
	bw := bufio.NewWriter(w)
	bits := lengthBits[L]()

	type frame struct {
		node N
		next int // index of the next child to render
	}
	stack := []frame{{node: node}}
	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]
		kids := t.children[f.node]

		if f.next < len(kids) {
			if f.next == 0 {
				bw.WriteByte('(')
			} else {
				bw.WriteByte(',')
			}
			stack[top].next++
			stack = append(stack, frame{node: kids[f.next]})
			continue
		}

		if len(kids) > 0 {
			bw.WriteByte(')')
		}
		if t.label != nil {
			bw.WriteString(t.label[f.node])
		}
		if t.length != nil && t.length[f.node] != 0 {
			bw.WriteByte(':')
			bw.WriteString(strconv.FormatFloat(float64(t.length[f.node]), 'g', -1, bits))
		}
		stack = stack[:top]
	}
	if semicolon {
		bw.WriteByte(';')
	}
	return bw.Flush()
}

// Newick returns the Newick string of the whole tree, semicolon included.
func (t *Tree[N, L]) Newick() string {
	var sb strings.Builder
	_ = t.WriteNewick(&sb, t.Root(), true)
	return sb.String()
}
