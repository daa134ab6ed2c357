package stdlib_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/tortugaresearch/anchor"

// corePackages may only import the standard library, each other and the
// logging and metrics stack.
var corePackages = []string{
	"../errs",
	"../event",
	"../metadata",
	"../propbag",
	"../validation",
	"../metrics",
	"logging",
	"primitives",
}

var allowedThirdParty = []string{
	"github.com/rs/zerolog",
	"github.com/prometheus/client_golang/",
	"go.uber.org/mock/",
	"github.com/stretchr/testify/",
}

func TestCoreImports(t *testing.T) {
	fset := token.NewFileSet()
	for _, dir := range corePackages {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if !allowedImport(p) {
					t.Errorf("%s imports %s", path, p)
				}
			}
		}
	}
}

func allowedImport(p string) bool {
	first, _, _ := strings.Cut(p, "/")
	if !strings.Contains(first, ".") {
		return true
	}
	if p == modulePath || strings.HasPrefix(p, modulePath+"/") {
		return !strings.HasPrefix(p, modulePath+"/cmd/") && p != modulePath+"/internal/config"
	}
	for _, prefix := range allowedThirdParty {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
