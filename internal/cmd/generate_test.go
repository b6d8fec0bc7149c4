package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/testutil"
)

const sampleProject = `name: demo
cpp_standard: 17
type: exe
libraries:
  - library: spdlog
include_tests: true
testing_framework: catch2
`

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestGenerate_WritesTree(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", sampleProject)
	outDir := filepath.Join(dir, "out")

	err := execute(t, "generate", "-f", cfgPath, "--out", outDir)
	require.NoError(t, err)

	for _, rel := range []string{
		"CMakeLists.txt",
		".cmake/quarry/dependencies.cmake",
		"include/demo/demo.hpp",
		"src/main.cpp",
		"src/demo.cpp",
		"tests/CMakeLists.txt",
		"tests/test_main.cpp",
		"README.md",
		".gitignore",
		".clang-format",
	} {
		_, statErr := os.Stat(filepath.Join(outDir, "demo", filepath.FromSlash(rel)))
		assert.NoError(t, statErr, "expected %s to exist", rel)
	}
}

func TestGenerate_WritesZip(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", sampleProject)
	zipPath := filepath.Join(dir, "demo.zip")

	err := execute(t, "generate", "-f", cfgPath, "--zip", zipPath)
	require.NoError(t, err)

	info, statErr := os.Stat(zipPath)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_ConfigDefaultClangFormatStyle(t *testing.T) {
	t.Setenv("QUARRY_CLANG_FORMAT_STYLE", "LLVM")

	t.Run("configured default applies when project leaves style unset", func(t *testing.T) {
		dir, cleanup := testutil.TempDir(t)
		defer cleanup()

		cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", "name: demo\n")
		outDir := filepath.Join(dir, "out")

		require.NoError(t, execute(t, "generate", "-f", cfgPath, "--out", outDir))

		content := testutil.ReadFile(t, filepath.Join(outDir, "demo", ".clang-format"))
		assert.Contains(t, content, "BasedOnStyle: LLVM")
	})

	t.Run("project file value wins over configured default", func(t *testing.T) {
		dir, cleanup := testutil.TempDir(t)
		defer cleanup()

		cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", "name: demo\nclang_format_style: Mozilla\n")
		outDir := filepath.Join(dir, "out")

		require.NoError(t, execute(t, "generate", "-f", cfgPath, "--out", outDir))

		content := testutil.ReadFile(t, filepath.Join(outDir, "demo", ".clang-format"))
		assert.Contains(t, content, "BasedOnStyle: Mozilla")
	})
}

func TestGenerate_UnknownOptionKeySucceeds(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", `name: demo
libraries:
  - library: spdlog
    options:
      not_a_real_option: true
`)
	outDir := filepath.Join(dir, "out")

	// The unknown key is warned about, never fatal.
	require.NoError(t, execute(t, "generate", "-f", cfgPath, "--out", outDir))

	_, statErr := os.Stat(filepath.Join(outDir, "demo", "CMakeLists.txt"))
	assert.NoError(t, statErr)
}

func TestGenerate_OutAndZipConflict(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", sampleProject)

	err := execute(t, "generate", "-f", cfgPath, "--out", dir, "--zip", filepath.Join(dir, "x.zip"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, qerrors.ErrValidation))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", "name: 123bad\n")

	err := execute(t, "generate", "-f", cfgPath, "--out", dir)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestGenerate_MissingFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	err := execute(t, "generate", "-f", filepath.Join(dir, "nope.yaml"), "--out", dir)
	assert.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", sampleProject)

	assert.NoError(t, execute(t, "preview", "-f", cfgPath))
}

func TestDepsCommand(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfgPath := testutil.WriteFile(t, dir, "quarry.yaml", sampleProject)

	assert.NoError(t, execute(t, "deps", "-f", cfgPath))
}

func TestListCommand(t *testing.T) {
	assert.NoError(t, execute(t, "list"))
	assert.NoError(t, execute(t, "list", "--category", "testing"))

	err := execute(t, "list", "--category", "nonsense")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestSearchCommand(t *testing.T) {
	assert.NoError(t, execute(t, "search", "logging"))
	assert.NoError(t, execute(t, "search", "definitely-not-a-library"))
}

func TestVersionCommand(t *testing.T) {
	assert.NoError(t, execute(t, "version"))
	assert.NoError(t, execute(t, "version", "--short"))
}

func TestRecipesFlagMissingDir(t *testing.T) {
	err := execute(t, "--recipes", "/no/such/dir", "list")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}
