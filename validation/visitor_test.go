package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.appointy.com/graphqlcore/ast"
)

type recordingVisitor struct {
	Base
	label string
	trace *[]string
}

func (r recordingVisitor) EnterField(ctx *Context, f *ast.Field) {
	*r.trace = append(*r.trace, "enter:"+r.label)
}

func (r recordingVisitor) ExitField(ctx *Context, f *ast.Field) {
	*r.trace = append(*r.trace, "exit:"+r.label)
}

func TestChainFiresInInsertionOrder(t *testing.T) {
	var trace []string
	chain := Chain(
		recordingVisitor{label: "A", trace: &trace},
		recordingVisitor{label: "B", trace: &trace},
		recordingVisitor{label: "C", trace: &trace},
	)

	f := &ast.Field{Name: "x"}
	ctx := &Context{}
	chain.EnterField(ctx, f)
	chain.ExitField(ctx, f)

	assert.Equal(t, []string{"enter:A", "enter:B", "enter:C", "exit:A", "exit:B", "exit:C"}, trace)
}

func TestNilIsANoOpVisitor(t *testing.T) {
	ctx := &Context{}
	// Must not panic on any hook.
	Nil{}.EnterDocument(ctx, &ast.Document{})
	Nil{}.ExitField(ctx, &ast.Field{})
}

func TestConsWith(t *testing.T) {
	var trace []string
	chain := Nil{}.
		With(recordingVisitor{label: "first", trace: &trace}).
		With(recordingVisitor{label: "second", trace: &trace})

	f := &ast.Field{}
	ctx := &Context{}
	chain.EnterField(ctx, f)

	assert.Equal(t, []string{"enter:second", "enter:first"}, trace, "With prepends, so the most recently added visitor runs first")
}
