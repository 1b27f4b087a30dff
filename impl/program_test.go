package impl

import (
	"strings"
	"testing"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
)

func TestProgramRun(t *testing.T) {
	logger := eval.NewArrayLogger()
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, ``)

	block := NewBlock(root)
	block.AddChild(NewAssign(NewLeaf(a), NewNumberLeaf(1)))
	block.AddChild(NewAssign(NewLeaf(a), NewMathOp(`+`, add, NewLeaf(a), NewNumberLeaf(2))))

	base := LiveTemporaries()
	p := NewProgram(root, block, logger)
	if err := p.Run(); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.AsNumber(); v != 3 {
		t.Errorf(`expected 3, got %v`, v)
	}
	if n := LiveTemporaries(); n != base {
		t.Errorf(`%d temporaries leaked`, n-base)
	}
	if len(logger.Entries(eval.DEBUG)) == 0 {
		t.Error(`successful run was not logged`)
	}
}

func TestProgramRunReportsErrors(t *testing.T) {
	logger := eval.NewArrayLogger()
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, ``)

	block := NewBlock(root)
	block.AddChild(NewAssign(NewLeaf(a), NewStringLeaf(`nope`)))

	p := NewProgram(root, block, logger)
	err := p.Run()
	if err == nil {
		t.Fatal(`expected the statement error to propagate`)
	}
	if rp, ok := err.(issue.Reported); !ok || rp.Code() != eval.NotANumber {
		t.Errorf(`expected %s, got %v`, eval.NotANumber, err)
	}
	if len(logger.Entries(eval.ERR)) != 1 {
		t.Error(`error was not logged`)
	}

	// The program stays runnable after a reported error.
	block2 := NewBlock(root)
	block2.AddChild(NewAssign(NewLeaf(a), NewNumberLeaf(4)))
	if err = NewProgram(root, block2, logger).Run(); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.AsNumber(); v != 4 {
		t.Errorf(`expected 4, got %v`, v)
	}
}

func TestProgramWrite(t *testing.T) {
	logger := eval.NewArrayLogger()
	root := NewScope(`config`, ``)
	a, _ := root.AddValueVar(`a`, `counter`)
	setNumber(t, a, 2)

	block := NewBlock(root)
	block.AddChild(NewAssign(NewLeaf(a), NewMathOp(`+`, add, NewLeaf(a), NewNumberLeaf(1))))

	w := &strings.Builder{}
	NewProgram(root, block, logger).Write(w, 24)
	expected := `Var a = 2;              // counter
a = a + 1;
`
	if w.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, w.String())
	}
}
