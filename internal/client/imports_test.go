package client

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverOnly lists packages that pull storage and export libraries into a
// client build.
var serverOnly = []string{
	"sosio/internal/services",
	"sosio/internal/database",
	"sosio/internal/handlers",
	"gorm.io/",
	"github.com/xuri/excelize",
	"golang.org/x/sync",
}

func TestClientImportsNoServerPackages(t *testing.T) {
	for _, dir := range []string{".", "../models", "../identity"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				for _, banned := range serverOnly {
					assert.False(t, strings.HasPrefix(path, banned), "%s imports %s", file, path)
				}
			}
		}
	}
}
