package impl

import (
	"io"

	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/curio-lang/curio-evaluator/utils"
	"github.com/lyraproj/issue/issue"
)

type (
	// node carries the parentage and source position shared by every node
	// variant.
	node struct {
		parent eval.Node
		loc    issue.Location
	}

	// internal is the base of all nodes with children.
	internal struct {
		node
		name     string
		children []eval.Node
	}

	// Leaf wraps a single symbol, either a named reference resolved by the
	// parser or an unnamed literal materialized for it.
	Leaf struct {
		node
		sym eval.Symbol
	}

	// Block is a sequence of statements governed by a scope. Statement
	// results are discarded.
	Block struct {
		internal
		scope eval.Scope
	}

	// UnaryOp applies a numeric function to its single operand.
	UnaryOp struct {
		internal
		fun func(float64) float64
	}

	// Scalar is the set of value representations an operator can consume or
	// produce.
	Scalar interface {
		float64 | string
	}

	// BinaryOp applies fun to its two operands, converting each to the
	// representation the operator declares for that position.
	BinaryOp[R, A, B Scalar] struct {
		internal
		fun func(A, B) R
	}

	// Assign copies the value of its right child into the symbol produced
	// by its left child.
	Assign struct {
		internal
	}

	// Call invokes the function produced by its first child with the
	// remaining children as arguments.
	Call struct {
		internal
	}

	// Event binds an action subtree to a host-defined trigger. The first
	// child is the action and is never evaluated here; the remaining
	// children are trigger arguments, evaluated at declaration time.
	Event struct {
		internal
		hook eval.EventHook
	}
)

func (n *node) Name() string {
	return ``
}

func (n *node) Parent() eval.Node {
	return n.parent
}

func (n *node) SetParent(p eval.Node) {
	n.parent = p
}

func (n *node) Scope() eval.Scope {
	if n.parent == nil {
		return nil
	}
	return n.parent.Scope()
}

func (n *node) SetLocation(loc issue.Location) {
	n.loc = loc
}

func (n *node) Location() issue.Location {
	return n.loc
}

func (n *node) IsNumeric() bool {
	return false
}

func (n *node) IsString() bool {
	return false
}

func (n *node) HasValue() bool {
	return false
}

func (n *node) HasNumericReturn() bool {
	return false
}

func (n *node) HasStringReturn() bool {
	return false
}

func (n *node) IsLeaf() bool {
	return false
}

func (n *node) IsInternal() bool {
	return false
}

func (n *node) NumChildren() int {
	return 0
}

func (n *node) Child(int) eval.Node {
	return nil
}

func (n *internal) Name() string {
	return n.name
}

func (n *internal) IsInternal() bool {
	return true
}

func (n *internal) NumChildren() int {
	return len(n.children)
}

func (n *internal) Child(i int) eval.Node {
	return n.children[i]
}

// addChild wires c into the tree. It is invalid to add the same node twice.
func (n *internal) addChild(self eval.Node, c eval.Node) {
	c.SetParent(self)
	n.children = append(n.children, c)
}

// NewLeaf wraps sym in a leaf node. A temporary symbol, such as a literal,
// is claimed by the leaf and remains valid for the life of the tree.
func NewLeaf(sym eval.Symbol) *Leaf {
	adoptSymbol(sym)
	return &Leaf{sym: sym}
}

// NewNumberLeaf materializes a literal number node.
func NewNumberLeaf(v float64) *Leaf {
	return NewLeaf(NewTempNumber(v))
}

// NewStringLeaf materializes a literal string node.
func NewStringLeaf(s string) *Leaf {
	return NewLeaf(NewTempString(s))
}

func (n *Leaf) Name() string {
	return n.sym.Name()
}

// Symbol exposes the wrapped symbol without evaluation.
func (n *Leaf) Symbol() eval.Symbol {
	return n.sym
}

func (n *Leaf) IsLeaf() bool {
	return true
}

func (n *Leaf) IsNumeric() bool {
	return n.sym.IsNumeric()
}

func (n *Leaf) IsString() bool {
	return n.sym.IsString()
}

func (n *Leaf) HasValue() bool {
	return true
}

func (n *Leaf) HasNumericReturn() bool {
	return n.sym.HasNumericReturn()
}

func (n *Leaf) HasStringReturn() bool {
	return n.sym.HasStringReturn()
}

// Process returns the wrapped symbol. The leaf retains ownership; the result
// is never temporary.
func (n *Leaf) Process() (eval.Symbol, error) {
	return n.sym, nil
}

func (n *Leaf) Write(w io.Writer, offset string) {
	if name := n.sym.Name(); name != `` {
		io.WriteString(w, name)
		return
	}
	if n.sym.IsString() {
		s, _ := n.sym.AsString()
		utils.CurioQuote(w, s)
		return
	}
	v, _ := n.sym.AsNumber()
	io.WriteString(w, formatNumber(v))
}

// NewBlock creates a statement sequence governed by scope.
func NewBlock(scope eval.Scope) *Block {
	return &Block{scope: scope}
}

func (n *Block) AddChild(c eval.Node) {
	n.addChild(n, c)
}

func (n *Block) Scope() eval.Scope {
	return n.scope
}

// Process runs each statement in order and discards its result. A statement
// error stops the block.
func (n *Block) Process() (eval.Symbol, error) {
	for _, c := range n.children {
		r, err := c.Process()
		if err != nil {
			eval.Release(r)
			return nil, err
		}
		eval.Release(r)
	}
	return nil, nil
}

func (n *Block) Write(w io.Writer, offset string) {
	for _, c := range n.children {
		io.WriteString(w, offset)
		c.Write(w, offset)
		io.WriteString(w, ";\n")
	}
}

// NewUnaryOp builds an operator node over a single numeric operand.
func NewUnaryOp(name string, fun func(float64) float64, operand eval.Node) *UnaryOp {
	n := &UnaryOp{internal: internal{name: name}, fun: fun}
	n.addChild(n, operand)
	return n
}

func (n *UnaryOp) IsNumeric() bool {
	return true
}

func (n *UnaryOp) HasValue() bool {
	return true
}

func (n *UnaryOp) Process() (eval.Symbol, error) {
	in, err := n.children[0].Process()
	if err != nil {
		return nil, err
	}
	v, err := in.AsNumber()
	eval.Release(in)
	if err != nil {
		return nil, err
	}
	return NewTempNumber(n.fun(v)), nil
}

func (n *UnaryOp) Write(w io.Writer, offset string) {
	io.WriteString(w, n.name)
	n.children[0].Write(w, offset)
}

// NewBinaryOp builds an operator node over two operands.
func NewBinaryOp[R, A, B Scalar](name string, fun func(A, B) R, left, right eval.Node) *BinaryOp[R, A, B] {
	n := &BinaryOp[R, A, B]{internal: internal{name: name}, fun: fun}
	n.addChild(n, left)
	n.addChild(n, right)
	return n
}

// NewMathOp builds the common numeric form of a binary operator.
func NewMathOp(name string, fun func(float64, float64) float64, left, right eval.Node) *BinaryOp[float64, float64, float64] {
	return NewBinaryOp(name, fun, left, right)
}

func (n *BinaryOp[R, A, B]) IsNumeric() bool {
	var z R
	_, ok := any(z).(float64)
	return ok
}

func (n *BinaryOp[R, A, B]) IsString() bool {
	var z R
	_, ok := any(z).(string)
	return ok
}

func (n *BinaryOp[R, A, B]) HasValue() bool {
	return true
}

// Process evaluates both operands, converts each to the representation its
// position requires, and returns the operator result as a fresh temporary.
// Temporary operand results are released whether or not conversion succeeds.
func (n *BinaryOp[R, A, B]) Process() (eval.Symbol, error) {
	left, err := n.children[0].Process()
	if err != nil {
		return nil, err
	}
	right, err := n.children[1].Process()
	if err != nil {
		eval.Release(left)
		return nil, err
	}
	a, errA := scalarOf[A](left)
	b, errB := scalarOf[B](right)
	eval.Release(left)
	eval.Release(right)
	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}
	switch r := any(n.fun(a, b)).(type) {
	case float64:
		return NewTempNumber(r), nil
	default:
		return NewTempString(r.(string)), nil
	}
}

func (n *BinaryOp[R, A, B]) Write(w io.Writer, offset string) {
	n.children[0].Write(w, offset)
	io.WriteString(w, ` `+n.name+` `)
	n.children[1].Write(w, offset)
}

// scalarOf reads sym in the representation T requires.
func scalarOf[T Scalar](sym eval.Symbol) (T, error) {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		v, err := sym.AsNumber()
		if err != nil {
			return z, err
		}
		*p = v
	case *string:
		v, err := sym.AsString()
		if err != nil {
			return z, err
		}
		*p = v
	}
	return z, nil
}

// NewAssign builds an assignment of rhs into the symbol lhs produces.
func NewAssign(lhs, rhs eval.Node) *Assign {
	n := &Assign{internal{name: `=`}}
	n.addChild(n, lhs)
	n.addChild(n, rhs)
	return n
}

func (n *Assign) IsNumeric() bool {
	return n.children[0].IsNumeric()
}

func (n *Assign) IsString() bool {
	return n.children[0].IsString()
}

func (n *Assign) HasValue() bool {
	return true
}

func (n *Assign) HasNumericReturn() bool {
	return n.children[0].HasNumericReturn()
}

func (n *Assign) HasStringReturn() bool {
	return n.children[0].HasStringReturn()
}

// Process copies the right result into the left symbol and returns the left
// symbol, permitting chained assignment. The right result is released when
// temporary.
func (n *Assign) Process() (eval.Symbol, error) {
	lhs, err := n.children[0].Process()
	if err != nil {
		return nil, err
	}
	rhs, err := n.children[1].Process()
	if err != nil {
		eval.Release(lhs)
		return nil, err
	}
	err = lhs.CopyValue(rhs)
	eval.Release(rhs)
	if err != nil {
		eval.Release(lhs)
		return nil, err
	}
	return lhs, nil
}

func (n *Assign) Write(w io.Writer, offset string) {
	n.children[0].Write(w, offset)
	io.WriteString(w, ` = `)
	n.children[1].Write(w, offset)
}

// NewCall builds an invocation of the symbol fun produces.
func NewCall(fun eval.Node, args ...eval.Node) *Call {
	n := &Call{internal{name: fun.Name()}}
	n.addChild(n, fun)
	for _, a := range args {
		n.addChild(n, a)
	}
	return n
}

func (n *Call) IsNumeric() bool {
	return n.children[0].HasNumericReturn()
}

func (n *Call) IsString() bool {
	return n.children[0].HasStringReturn()
}

func (n *Call) HasValue() bool {
	return true
}

// Process evaluates the callee and all arguments left to right, then
// invokes the callee. Temporary argument and callee results are released
// whether or not the invocation succeeds.
func (n *Call) Process() (eval.Symbol, error) {
	fn, err := n.children[0].Process()
	if err != nil {
		return nil, err
	}
	args := make([]eval.Symbol, 0, len(n.children)-1)
	for _, c := range n.children[1:] {
		var a eval.Symbol
		if a, err = c.Process(); err != nil {
			break
		}
		args = append(args, a)
	}
	var result eval.Symbol
	if err == nil {
		result, err = fn.Call(args)
	}
	for _, a := range args {
		eval.Release(a)
	}
	eval.Release(fn)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (n *Call) Write(w io.Writer, offset string) {
	n.children[0].Write(w, offset)
	io.WriteString(w, `(`)
	for i, a := range n.children[1:] {
		if i > 0 {
			io.WriteString(w, `, `)
		}
		a.Write(w, offset)
	}
	io.WriteString(w, `)`)
}

// NewEvent binds action to the trigger named name. The remaining arguments
// are evaluated once, when the event declaration itself is processed.
func NewEvent(name string, hook eval.EventHook, action eval.Node, args ...eval.Node) *Event {
	n := &Event{internal: internal{name: name}, hook: hook}
	n.addChild(n, action)
	for _, a := range args {
		n.addChild(n, a)
	}
	return n
}

// Action returns the unevaluated action subtree.
func (n *Event) Action() eval.Node {
	return n.children[0]
}

// Process evaluates the trigger arguments and hands the hook an owned
// snapshot of their values together with the unevaluated action. The hook
// keeps the snapshot; the argument results themselves are released.
func (n *Event) Process() (eval.Symbol, error) {
	snapshot := make([]eval.Symbol, 0, len(n.children)-1)
	for _, c := range n.children[1:] {
		a, err := c.Process()
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, a.Clone())
		eval.Release(a)
	}
	return nil, n.hook(n.children[0], snapshot)
}

func (n *Event) Write(w io.Writer, offset string) {
	io.WriteString(w, `@`+n.name+`(`)
	for i, a := range n.children[1:] {
		if i > 0 {
			io.WriteString(w, `, `)
		}
		a.Write(w, offset)
	}
	io.WriteString(w, `) `)
	n.children[0].Write(w, offset)
}
