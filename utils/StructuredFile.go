package utils

import (
	"fmt"
	"io"
)

const STRUCTUREDFILE_DEFAULT_TAB = "  "

/***************************************
 * Structured file writer
 ***************************************/

type StructuredFile struct {
	indent  string
	tab     string
	writer  io.Writer
	onFresh bool
}

func NewStructuredFile(writer io.Writer, tab string) *StructuredFile {
	return &StructuredFile{
		tab:     tab,
		writer:  writer,
		onFresh: true,
	}
}

func (sf *StructuredFile) BeginIndent() {
	sf.indent += sf.tab
}
func (sf *StructuredFile) EndIndent() {
	sf.indent = sf.indent[:len(sf.indent)-len(sf.tab)]
}
func (sf *StructuredFile) ScopeIndent(infix func()) {
	sf.BeginIndent()
	infix()
	sf.EndIndent()
}

func (sf *StructuredFile) indentIFN() {
	if sf.onFresh {
		fmt.Fprint(sf.writer, sf.indent)
		sf.onFresh = false
	}
}

func (sf *StructuredFile) Print(format string, args ...interface{}) {
	sf.indentIFN()
	fmt.Fprintf(sf.writer, format, args...)
}
func (sf *StructuredFile) Println(format string, args ...interface{}) {
	sf.indentIFN()
	fmt.Fprintf(sf.writer, format, args...)
	fmt.Fprintln(sf.writer)
	sf.onFresh = true
}
func (sf *StructuredFile) LineBreak() {
	fmt.Fprintln(sf.writer)
	sf.onFresh = true
}
