package ir

import "github.com/scriptumlang/scriptum/internal/ast"

// Lower is spec.md §4.5's pure `Module → ModuleIr` function: a structural,
// panic-free (besides internal invariant violations) translation. It never
// produces diagnostics — user errors were already the analyzer's job.
func Lower(module *ast.Module) *Module {
	items := make([]Item, len(module.Items))
	for i, it := range module.Items {
		items[i] = lowerItem(it)
	}
	return &Module{Items: items, Interner: module.Interner}
}

func lowerItem(it ast.Item) Item {
	switch x := it.(type) {
	case *ast.FunctionDecl:
		return &Function{
			base:       base{span: x.Span()},
			Name:       x.Name,
			Generics:   x.Generics,
			Params:     lowerParams(x.Params),
			ReturnType: x.ReturnType,
			Body:       lowerStmtVector(x.Body),
		}
	case *ast.GlobalVarDecl:
		return &GlobalVar{
			base:    base{span: x.Span()},
			Name:    x.Name,
			Mutable: x.Mutable,
			Type:    x.Type,
			Init:    lowerExpr(x.Init),
		}
	default:
		panic("ir: Lower: unknown ast.Item type")
	}
}

func lowerParams(params []*ast.Parameter) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = Param{base: base{span: p.Span()}, Name: p.Name, Type: p.Type, Default: lowerExpr(p.Default)}
	}
	return out
}

// lowerStmtVector lowers a statement in a vector-materializing body
// position (If's Then/Else, While's Body, ForIn's Body, a function's
// Body). A literal block unwraps directly into the vector; any other
// single statement becomes a one-element vector — either way the result
// is never nil, satisfying spec.md §4.5's "always materializes ... as
// (possibly empty) statement vectors".
func lowerStmtVector(s ast.Stmt) []Stmt {
	if s == nil {
		return []Stmt{}
	}
	if blk, ok := s.(*ast.Block); ok {
		out := make([]Stmt, len(blk.Stmts))
		for i, st := range blk.Stmts {
			out[i] = lowerStmt(st)
		}
		return out
	}
	return []Stmt{lowerStmt(s)}
}

func lowerStmt(s ast.Stmt) Stmt {
	switch x := s.(type) {
	case *ast.Block:
		return &Block{base: base{span: x.Span()}, Stmts: lowerStmtVector(x)}
	case *ast.LocalVarDecl:
		return &LocalVar{base: base{span: x.Span()}, Name: x.Name, Mutable: x.Mutable, Type: x.Type, Init: lowerExpr(x.Init)}
	case *ast.ExprStmt:
		return &ExprStmt{base: base{span: x.Span()}, X: lowerExpr(x.X)}
	case *ast.ReturnStmt:
		return &Return{base: base{span: x.Span()}, Value: lowerExpr(x.Value)}
	case *ast.IfStmt:
		return &If{
			base: base{span: x.Span()},
			Cond: lowerExpr(x.Cond),
			Then: lowerStmtVector(x.Then),
			Else: lowerStmtVector(x.Else),
		}
	case *ast.WhileStmt:
		return &While{base: base{span: x.Span()}, Cond: lowerExpr(x.Cond), Body: lowerStmtVector(x.Body)}
	case *ast.ForInStmt:
		return &ForIn{
			base:     base{span: x.Span()},
			Target:   ForTarget{Name: x.Target, Mutable: true, Type: nil},
			Iterable: lowerExpr(x.Iterable),
			Body:     lowerStmtVector(x.Body),
		}
	case *ast.BreakStmt:
		return &Break{base: base{span: x.Span()}}
	case *ast.ContinueStmt:
		return &Continue{base: base{span: x.Span()}}
	default:
		panic("ir: lowerStmt: unknown ast.Stmt type")
	}
}

// lowerExpr lowers e, passing nil through unchanged so optional fields
// (initializers, default values, return values) don't need a nil check at
// every call site.
func lowerExpr(e ast.Expr) Expr {
	if e == nil {
		return nil
	}
	switch x := e.(type) {
	case *ast.NumberLit:
		return &NumberLit{base: base{span: x.Span()}, Value: x.Value, Raw: x.Raw}
	case *ast.TextLit:
		return &TextLit{base: base{span: x.Span()}, Value: x.Value, Raw: x.Raw}
	case *ast.BoolLit:
		return &BoolLit{base: base{span: x.Span()}, Value: x.Value}
	case *ast.NullumLit:
		return &NullumLit{base: base{span: x.Span()}}
	case *ast.IndefinitumLit:
		return &IndefinitumLit{base: base{span: x.Span()}}
	case *ast.Ident:
		return &Ident{base: base{span: x.Span()}, Name: x.Name}
	case *ast.UnaryExpr:
		return &Unary{base: base{span: x.Span()}, Op: x.Op, Operand: lowerExpr(x.Operand)}
	case *ast.BinaryExpr:
		return &Binary{base: base{span: x.Span()}, Op: x.Op, Left: lowerExpr(x.Left), Right: lowerExpr(x.Right)}
	case *ast.NullishExpr:
		return &Nullish{base: base{span: x.Span()}, Left: lowerExpr(x.Left), Right: lowerExpr(x.Right)}
	case *ast.ConditionalExpr:
		return &Conditional{base: base{span: x.Span()}, Cond: lowerExpr(x.Cond), Then: lowerExpr(x.Then), Else: lowerExpr(x.Else)}
	case *ast.AssignExpr:
		return &Assign{base: base{span: x.Span()}, Op: x.Op, Target: lowerExpr(x.Target), Value: lowerExpr(x.Value)}
	case *ast.CallExpr:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = lowerExpr(a)
		}
		return &Call{base: base{span: x.Span()}, Callee: lowerExpr(x.Callee), Args: args}
	case *ast.IndexExpr:
		return &Index{base: base{span: x.Span()}, Object: lowerExpr(x.Object), Index: lowerExpr(x.Index)}
	case *ast.MemberExpr:
		return &Member{base: base{span: x.Span()}, Object: lowerExpr(x.Object), Name: x.Name}
	case *ast.ArrayLit:
		items := make([]Expr, len(x.Items))
		for i, it := range x.Items {
			items[i] = lowerExpr(it)
		}
		return &ArrayLit{base: base{span: x.Span()}, Items: items}
	case *ast.ObjectLit:
		fields := make([]ObjectField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = ObjectField{Name: f.Name, Value: lowerExpr(f.Value)}
		}
		return &ObjectLit{base: base{span: x.Span()}, Fields: fields}
	case *ast.LambdaExpr:
		lam := &Lambda{base: base{span: x.Span()}, Params: lowerParams(x.Params), ReturnType: x.ReturnType}
		if x.ExprBody != nil {
			lam.IsExprBody = true
			lam.ExprBody = lowerExpr(x.ExprBody)
		} else {
			lam.BlockBody = lowerStmtVector(x.BlockBody)
		}
		return lam
	default:
		panic("ir: lowerExpr: unknown ast.Expr type")
	}
}
