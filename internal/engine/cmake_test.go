package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCMakeLists_Exe(t *testing.T) {
	out := GenerateCMakeLists("demo", 17, false, ProjectExe, false)

	assert.Contains(t, out, "project(demo VERSION 1.0.0 LANGUAGES CXX)")
	assert.Contains(t, out, "set(CMAKE_CXX_STANDARD 17)")
	assert.Contains(t, out, `option(BUILD_SHARED_LIBS "Build shared libraries" OFF)`)
	assert.Contains(t, out, "include(${CMAKE_CURRENT_SOURCE_DIR}/.cmake/quarry/dependencies.cmake)")
	assert.Contains(t, out, "add_executable(demo")
	assert.Contains(t, out, "src/main.cpp")
	assert.Contains(t, out, "${QUARRY_LINK_LIBRARIES}")
	assert.NotContains(t, out, "add_library")
	assert.NotContains(t, out, "install(")
	assert.NotContains(t, out, "enable_testing()")
}

func TestGenerateCMakeLists_Lib(t *testing.T) {
	out := GenerateCMakeLists("mylib", 20, true, ProjectLib, true)

	assert.Contains(t, out, "add_library(mylib")
	assert.Contains(t, out, `option(BUILD_SHARED_LIBS "Build shared libraries" ON)`)
	assert.Contains(t, out, "$<INSTALL_INTERFACE:include>")
	assert.Contains(t, out, "install(TARGETS mylib")
	assert.Contains(t, out, "install(DIRECTORY include/ DESTINATION include)")
	assert.Contains(t, out, "enable_testing()")
	assert.Contains(t, out, "add_subdirectory(tests)")
	assert.NotContains(t, out, "src/main.cpp")
	assert.NotContains(t, out, "add_executable")
}

func TestGenerateTestCMake(t *testing.T) {
	t.Run("compiles project source into the test target", func(t *testing.T) {
		out := GenerateTestCMake("demo", FrameworkGoogleTest)

		assert.Contains(t, out, "add_executable(demo_tests")
		assert.Contains(t, out, "test_main.cpp")
		assert.Contains(t, out, "${CMAKE_CURRENT_SOURCE_DIR}/../src/demo.cpp")
		assert.Contains(t, out, "${QUARRY_LINK_LIBRARIES}")
		assert.Contains(t, out, "${QUARRY_TEST_LINK_LIBRARIES}")
	})

	t.Run("googletest discovery", func(t *testing.T) {
		out := GenerateTestCMake("demo", FrameworkGoogleTest)

		assert.Contains(t, out, "include(GoogleTest)")
		assert.Contains(t, out, "gtest_discover_tests(demo_tests)")
	})

	t.Run("catch2 discovery", func(t *testing.T) {
		out := GenerateTestCMake("demo", FrameworkCatch2)

		assert.Contains(t, out, "include(Catch)")
		assert.Contains(t, out, "catch_discover_tests(demo_tests)")
	})

	t.Run("doctest uses plain add_test", func(t *testing.T) {
		out := GenerateTestCMake("demo", FrameworkDoctest)

		assert.Contains(t, out, "add_test(NAME demo_tests COMMAND demo_tests)")
		assert.False(t, strings.Contains(out, "discover_tests"))
	})
}
