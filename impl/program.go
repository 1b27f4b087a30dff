package impl

import (
	"io"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
)

// Program ties a root scope to the statement tree a parser produced for it
// and drives evaluation.
type Program struct {
	root   *SymbolScope
	block  eval.Node
	logger eval.Logger
}

func NewProgram(root *SymbolScope, block eval.Node, logger eval.Logger) *Program {
	return &Program{root: root, block: block, logger: logger}
}

func (p *Program) Root() *SymbolScope {
	return p.root
}

func (p *Program) Block() eval.Node {
	return p.block
}

// Run evaluates the statement tree once. Reported errors are logged and
// returned; the tree and the root scope stay valid, so a host may repair
// state and run again.
func (p *Program) Run() error {
	r, err := p.block.Process()
	eval.Release(r)
	if err != nil {
		if rp, ok := err.(issue.Reported); ok {
			p.logger.LogIssue(rp)
		} else {
			p.logger.Logf(eval.ERR, `%s`, err.Error())
		}
		return err
	}
	p.logger.Logf(eval.DEBUG, `evaluated %d statements in scope '%s'`, p.block.NumChildren(), p.root.Name())
	return nil
}

// Write regenerates the program as script text, state first.
func (p *Program) Write(w io.Writer, commentColumn int) {
	p.root.WriteContents(w, ``, commentColumn)
	p.block.Write(w, ``)
}
