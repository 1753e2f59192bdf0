// Package main запускает multichecker для кода шлюза.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes, в том числе lostcancel и httpresponse
// - все SA-анализаторы staticcheck
// - выборочные проверки simple и stylecheck (S1000, ST1005)
// - анализатор неиспользуемого кода U1000
// - публичный анализатор bodyclose (тело ответа бэкенда должно закрываться)
// - собственный анализатор noexit (запрещает os.Exit в main, шлюз завершается через run)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/URLShortenerGateway/cmd/staticlint/noexit"
)

// extraChecks - проверки staticcheck вне класса SA.
var extraChecks = map[string]bool{
	"S1000":  true, // select с одной веткой
	"ST1005": true, // текст ошибки с маленькой буквы
}

func main() {
	analyzers := []*analysis.Analyzer{
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	analyzers = append(analyzers, pick(simple.Analyzers, stylecheck.Analyzers)...)
	analyzers = append(analyzers, unused.Analyzer.Analyzer) // U1000

	// публичный анализатор (не из staticcheck)
	analyzers = append(analyzers, bodyclose.Analyzer)

	// собственный анализатор
	analyzers = append(analyzers, noexit.NewAnalyzer())

	multichecker.Main(analyzers...)
}

// pick отбирает из наборов staticcheck проверки, перечисленные в extraChecks.
func pick(sets ...[]*lint.Analyzer) []*analysis.Analyzer {
	var out []*analysis.Analyzer
	for _, set := range sets {
		for _, a := range set {
			if extraChecks[a.Analyzer.Name] {
				out = append(out, a.Analyzer)
			}
		}
	}
	return out
}
