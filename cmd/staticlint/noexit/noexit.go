// Package noexit содержит анализатор, запрещающий прямой вызов os.Exit в пакете main.
//
// Завершать процесс должен только main через возврат ошибки из run:
// os.Exit в обход defer теряет буферизованные записи журнала и
// не даёт серверам остановиться мягко.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer сообщает о каждом вызове os.Exit в пакете main,
// в том числе через переименованный импорт и значение функции.
var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает использовать os.Exit в пакете main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func isOSExit(obj types.Object) bool {
	fn, ok := obj.(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodes := []ast.Node{(*ast.CallExpr)(nil), (*ast.SelectorExpr)(nil)}

	// Preorder обходит вызов раньше его селектора
	called := make(map[ast.Expr]bool)
	ins.Preorder(nodes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			if isOSExit(typeutil.Callee(pass.TypesInfo, n)) {
				called[astutil.Unparen(n.Fun)] = true
				pass.Reportf(n.Pos(), "вызов os.Exit в пакете main запрещён")
			}
		case *ast.SelectorExpr:
			// exit := os.Exit
			if !called[n] && isOSExit(pass.TypesInfo.Uses[n.Sel]) {
				pass.Reportf(n.Pos(), "использование os.Exit в пакете main запрещено")
			}
		}
	})
	return nil, nil
}
