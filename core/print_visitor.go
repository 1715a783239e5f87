package core

import (
	"bytes"
	"fmt"

	"orionlang/orion/parser"
)

const indentSize = 2

// printVisitor renders an AST as indented, one-line-per-node text,
// grounded directly on the teacher's root-level PrintingVisitor (same
// indent-then-recurse shape), adapted to Orion's node set.
type printVisitor struct {
	indent int
	buf    bytes.Buffer
}

func newPrintVisitor() *printVisitor { return &printVisitor{} }

func (p *printVisitor) writeln(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printVisitor) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *printVisitor) VisitProgram(n *parser.Program) {
	p.writeln("Program")
	p.nested(func() {
		for _, s := range n.Stmts {
			s.Accept(p)
		}
	})
}

func (p *printVisitor) VisitNumberLit(n *parser.NumberLit) {
	if n.IsFloat {
		p.writeln("NumberLit(%g)", n.FloatVal)
		return
	}
	p.writeln("NumberLit(%d)", n.IntVal)
}

func (p *printVisitor) VisitStringLit(n *parser.StringLit) {
	p.writeln("StringLit(%q)", n.Value)
}

func (p *printVisitor) VisitIdent(n *parser.Ident) {
	p.writeln("Ident(%s)", n.Name)
}

func (p *printVisitor) VisitUnary(n *parser.Unary) {
	p.writeln("Unary(%s)", n.Op)
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *printVisitor) VisitBinary(n *parser.Binary) {
	p.writeln("Binary(%s)", n.Op)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *printVisitor) VisitCall(n *parser.Call) {
	p.writeln("Call(%s)", n.Callee)
	p.nested(func() {
		for _, arg := range n.Args {
			arg.Accept(p)
		}
	})
}

func (p *printVisitor) VisitAssign(n *parser.Assign) {
	if n.Tag != parser.NoTag {
		p.writeln("Assign(%s, tag=%s)", n.Name, n.Tag)
	} else {
		p.writeln("Assign(%s)", n.Name)
	}
	p.nested(func() { n.Expr.Accept(p) })
}

func (p *printVisitor) VisitExprStmt(n *parser.ExprStmt) {
	p.writeln("ExprStmt")
	p.nested(func() { n.Expr.Accept(p) })
}

func (p *printVisitor) VisitBlock(n *parser.Block) {
	p.writeln("Block")
	p.nested(func() {
		for _, s := range n.Stmts {
			s.Accept(p)
		}
	})
}

func (p *printVisitor) VisitIf(n *parser.If) {
	p.writeln("If")
	p.nested(func() {
		n.Cond.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *printVisitor) VisitWhile(n *parser.While) {
	p.writeln("While")
	p.nested(func() {
		n.Cond.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *printVisitor) VisitFor(n *parser.For) {
	p.writeln("For")
	p.nested(func() {
		if n.Init != nil {
			n.Init.Accept(p)
		}
		if n.Cond != nil {
			n.Cond.Accept(p)
		}
		if n.Update != nil {
			n.Update.Accept(p)
		}
		n.Body.Accept(p)
	})
}

func (p *printVisitor) VisitReturn(n *parser.Return) {
	p.writeln("Return")
	if n.Value != nil {
		p.nested(func() { n.Value.Accept(p) })
	}
}

func (p *printVisitor) VisitFunctionDecl(n *parser.FunctionDecl) {
	p.writeln("FunctionDecl(%s)", n.Name)
	p.nested(func() { n.Body.Accept(p) })
}
