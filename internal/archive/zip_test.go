package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarry-cpp/quarry/internal/engine"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/testutil"
)

func sampleArtifacts() engine.ArtifactSet {
	return engine.ArtifactSet{
		{Path: "CMakeLists.txt", Content: "cmake_minimum_required(VERSION 3.20)\n"},
		{Path: "src/main.cpp", Content: "int main() { return 0; }\n"},
		{Path: ".cmake/quarry/dependencies.cmake", Content: "include(FetchContent)\n"},
	}
}

func TestBuild_Prefixed(t *testing.T) {
	data, err := Build(sampleArtifacts(), "demo")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}

	assert.Contains(t, names, "demo/CMakeLists.txt")
	assert.Contains(t, names, "demo/src/main.cpp")
	assert.Contains(t, names, "demo/.cmake/quarry/dependencies.cmake")
}

func TestBuild_Flat(t *testing.T) {
	data, err := Build(sampleArtifacts(), "")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	require.NotEmpty(t, zr.File)
	assert.Equal(t, "CMakeLists.txt", zr.File[0].Name)
}

func TestRoundTrip(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	data, err := Build(sampleArtifacts(), "demo")
	require.NoError(t, err)

	require.NoError(t, Extract(data, dir))

	content := testutil.ReadFile(t, filepath.Join(dir, "demo", "src", "main.cpp"))
	assert.Equal(t, "int main() { return 0; }\n", content)

	content = testutil.ReadFile(t, filepath.Join(dir, "demo", ".cmake", "quarry", "dependencies.cmake"))
	assert.Equal(t, "include(FetchContent)\n", content)
}

func TestExtract_RejectsTraversal(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	// Hand-build an archive with an escaping entry.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../evil.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	err = Extract(buf.Bytes(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qerrors.ErrUnsafePath))

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_RejectsAbsolutePath(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("/etc/evil.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	err = Extract(buf.Bytes(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qerrors.ErrUnsafePath))
}
