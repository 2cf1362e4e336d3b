// Генерация справочника кодов ошибок SDK Vaiz в формате Markdown.
// Определения DefinedError читаются из исходника apierrors через go/ast, коды ошибок API
// берутся из apierrors.RemoteCodes.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"strconv"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	md "github.com/nao1215/markdown"
)

// errorDef одно определение ошибки из исходника
type errorDef struct {
	Name   string
	Code   int
	Status string
	Err    string
	RuErr  string
}

// statusCodes статусы, которые используются в apierrors
var statusCodes = map[string]int{
	"StatusBadRequest":          400,
	"StatusUnauthorized":        401,
	"StatusForbidden":           403,
	"StatusNotFound":            404,
	"StatusTooManyRequests":     429,
	"StatusInternalServerError": 500,
	"StatusBadGateway":          502,
}

func main() {
	src := flag.String("src", "pkg/apierrors/apierrors.go", "Path of apierrors.go")
	out := flag.String("out", "api_errors.md", "Path to output md")
	flag.Parse()

	slog.Info("Generate api errors docs", "src", *src, "out", *out)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, *src, nil, 0)
	if err != nil {
		slog.Error("Parse errors source", "err", err)
		os.Exit(1)
	}

	ff, err := os.Create(*out)
	if err != nil {
		slog.Error("Create output", "err", err)
		os.Exit(1)
	}
	defer ff.Close()

	if err := buildDocs(md.NewMarkdown(ff), collectErrors(f)).Build(); err != nil {
		slog.Error("Generate docs fail", "err", err)
		os.Exit(1)
	}
	slog.Info("Docs generated")
}

func buildDocs(m *md.Markdown, defs []errorDef) *md.Markdown {
	var remote, local [][]string
	for _, d := range defs {
		row := []string{md.Bold(strconv.Itoa(d.Code)), statusCell(d.Status), md.Code(d.Err), md.Code(d.RuErr)}
		if d.Code < 2000 {
			remote = append(remote, row)
		} else {
			local = append(local, row)
		}
	}

	var codes [][]string
	for _, code := range apierrors.RemoteCodes() {
		class := (&apierrors.APIError{Code: code}).Class()
		codes = append(codes, []string{md.Code(code), md.Bold(strconv.Itoa(class.Code))})
	}

	header := []string{"Код", "HTTP код", "Сообщение", "Сообщение на русском"}
	return m.H1("Перечень кодов ошибок").
		PlainText("Ошибки SDK Vaiz. В результатах MCP инструментов код указывается в квадратных скобках, например "+md.Code("[1003] resource not found")+".").
		H2("Ошибки API").
		CustomTable(md.TableSet{Header: header, Rows: remote}, md.TableOptions{AutoWrapText: false}).
		H2("Коды ответа API").
		PlainText("Поле "+md.Code("error.code")+" ответа приводится к классу ошибки. Неизвестные коды относятся к "+md.Bold(strconv.Itoa(apierrors.ErrSDK.Code))+".").
		CustomTable(md.TableSet{Header: []string{"error.code", "Код"}, Rows: codes}, md.TableOptions{AutoWrapText: false}).
		H2("Ошибки SDK").
		CustomTable(md.TableSet{Header: header, Rows: local}, md.TableOptions{AutoWrapText: false})
}

func statusCell(name string) string {
	if code, ok := statusCodes[name]; ok {
		return fmt.Sprintf("%d %s", code, md.Italic(name))
	}
	return md.Italic(name)
}

// collectErrors находит литералы DefinedError{...} в объявлениях var
func collectErrors(f *ast.File) []errorDef {
	var defs []errorDef
	for _, d := range f.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR {
			continue
		}
		for _, spec := range decl.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if i >= len(vs.Values) {
					break
				}
				lit, ok := vs.Values[i].(*ast.CompositeLit)
				if !ok || !isDefinedError(lit.Type) {
					continue
				}
				def := errorDef{Name: name.Name, Status: "StatusBadRequest"}
				for _, elt := range lit.Elts {
					kv, ok := elt.(*ast.KeyValueExpr)
					if !ok {
						continue
					}
					switch fmt.Sprint(kv.Key) {
					case "Code":
						def.Code, _ = strconv.Atoi(literal(kv.Value))
					case "StatusCode":
						if sel, ok := kv.Value.(*ast.SelectorExpr); ok {
							def.Status = sel.Sel.Name
						}
					case "Err":
						def.Err = literal(kv.Value)
					case "RuErr":
						def.RuErr = literal(kv.Value)
					}
				}
				defs = append(defs, def)
			}
		}
	}
	return defs
}

func isDefinedError(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == "DefinedError"
}

// literal значение строкового или числового литерала, строки склеиваются через +
func literal(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind == token.STRING {
			if s, err := strconv.Unquote(e.Value); err == nil {
				return s
			}
		}
		return e.Value
	case *ast.BinaryExpr:
		if e.Op == token.ADD {
			return literal(e.X) + literal(e.Y)
		}
	case *ast.ParenExpr:
		return literal(e.X)
	}
	return ""
}
