package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module := moduleName(slash)
		layer := detectLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, "wirematch/internal/ui") || strings.HasPrefix(importPath, "wirematch/internal/bootstrap") {
				t.Fatalf("module code must not depend on %s: %s", importPath, slash)
			}
			if !strings.Contains(importPath, "wirematch/internal/modules/") {
				continue
			}
			if violatesLayerRule(module, layer, importPath) {
				t.Fatalf("forbidden import in %s (%s): %s", slash, layer, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path+"/", "/port/in/")
}

func isDTO(path string) bool {
	return strings.Contains(path+"/", "/dto/")
}

func importsLayer(path string, layers ...string) bool {
	path += "/"
	for _, layer := range layers {
		if strings.Contains(path, "/"+layer+"/") {
			return true
		}
	}
	return false
}

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.HasPrefix(importPath+"/", "wirematch/internal/modules/"+module+"/")
	if !sameModule {
		if importsLayer(importPath, "service", "adapter", "usecase") {
			return true
		}
		if isPortIn(importPath) || isDTO(importPath) {
			return false
		}
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return importsLayer(importPath, "adapter")
	case "service":
		return importsLayer(importPath, "adapter", "usecase")
	case "domain":
		return importsLayer(importPath, "adapter", "usecase", "service")
	default:
		return false
	}
}

func TestLayerRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, importPath string
		forbidden                 bool
	}{
		{"puzzle", "service", "wirematch/internal/modules/puzzle/port/out", false},
		{"puzzle", "service", "wirematch/internal/modules/puzzle/adapter/out", true},
		{"puzzle", "adapter/in", "wirematch/internal/modules/puzzle/domain", true},
		{"puzzle", "adapter/in", "wirematch/internal/modules/puzzle/dto", false},
		{"puzzle", "adapter/out", "wirematch/internal/modules/score/port/in", false},
		{"puzzle", "adapter/out", "wirematch/internal/modules/score/service", true},
		{"score", "domain", "wirematch/internal/modules/score/usecase", true},
		{"puzzle", "adapter/out", "wirematch/internal/modules/score/adapter/out", true},
		{"puzzle", "usecase", "wirematch/internal/modules/score/usecase", true},
		{"puzzle", "adapter/out", "wirematch/internal/modules/score/dto", false},
		{"puzzle", "usecase", "wirematch/internal/modules/puzzle/service", false},
		{"puzzle", "usecase", "wirematch/internal/modules/puzzle/adapter/out", true},
		{"score", "service", "wirematch/internal/modules/score/port/out", false},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.importPath); got != tc.forbidden {
			t.Fatalf("%s %s -> %s: expected forbidden=%v", tc.module, tc.layer, tc.importPath, tc.forbidden)
		}
	}
}
