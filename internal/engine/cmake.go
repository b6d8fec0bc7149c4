package engine

import (
	"fmt"
	"strings"
)

// GenerateCMakeLists renders the top-level CMakeLists.txt. The dependencies
// artifact is referenced via include(), never inlined, so it can be
// regenerated independently. standard must already account for library
// minimums (see maxStandard).
func GenerateCMakeLists(name string, standard int, buildShared bool, projectType ProjectType, includeTests bool) string {
	sharedDefault := "OFF"
	if buildShared {
		sharedDefault = "ON"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`cmake_minimum_required(VERSION 3.20)
project(%s VERSION 1.0.0 LANGUAGES CXX)

# Set C++ standard
set(CMAKE_CXX_STANDARD %d)
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_CXX_EXTENSIONS OFF)

# Export compile commands for IDE support
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)

# Build options
option(BUILD_SHARED_LIBS "Build shared libraries" %s)

# =============================================================================
# Dependencies (managed by Quarry - regenerate with 'quarry deps')
# =============================================================================
include(${CMAKE_CURRENT_SOURCE_DIR}/%s)

`, name, standard, sharedDefault, DependenciesPath))

	if projectType == ProjectExe {
		sb.WriteString(fmt.Sprintf(`# =============================================================================
# Main Executable
# =============================================================================

add_executable(%s
    src/main.cpp
    src/%s.cpp
)

target_include_directories(%s
    PRIVATE
        $<BUILD_INTERFACE:${CMAKE_CURRENT_SOURCE_DIR}/include>
)

target_link_libraries(%s
    PRIVATE
        ${%s}
)

`, name, name, name, name, LinkLibrariesVar))
	} else {
		sb.WriteString(fmt.Sprintf(`# =============================================================================
# Main Library
# =============================================================================

add_library(%s
    src/%s.cpp
)

target_include_directories(%s
    PUBLIC
        $<BUILD_INTERFACE:${CMAKE_CURRENT_SOURCE_DIR}/include>
        $<INSTALL_INTERFACE:include>
)

target_link_libraries(%s
    PUBLIC
        ${%s}
)

# =============================================================================
# Installation
# =============================================================================

install(TARGETS %s
    EXPORT %sTargets
    LIBRARY DESTINATION lib
    ARCHIVE DESTINATION lib
    INCLUDES DESTINATION include
)

install(DIRECTORY include/ DESTINATION include)

`, name, name, name, name, LinkLibrariesVar, name, name))
	}

	if includeTests {
		sb.WriteString(`# =============================================================================
# Testing
# =============================================================================

enable_testing()

add_subdirectory(tests)
`)
	}

	return sb.String()
}

// GenerateTestCMake renders tests/CMakeLists.txt. The test target compiles
// the project source directly so the tests link even for exe projects, and
// discovery matches the detected framework.
func GenerateTestCMake(name string, framework TestingFramework) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`# Test configuration for %s

add_executable(%s_tests
    test_main.cpp
    ${CMAKE_CURRENT_SOURCE_DIR}/../src/%s.cpp
)

target_include_directories(%s_tests
    PRIVATE
        ${CMAKE_CURRENT_SOURCE_DIR}/../include
)

target_link_libraries(%s_tests
    PRIVATE
        ${%s}
        ${%s}
)

`, name, name, name, name, name, LinkLibrariesVar, TestLinkLibrariesVar))

	switch framework {
	case FrameworkGoogleTest:
		sb.WriteString(fmt.Sprintf(`include(GoogleTest)
gtest_discover_tests(%s_tests)
`, name))
	case FrameworkCatch2:
		sb.WriteString(fmt.Sprintf(`include(CTest)
include(Catch)
catch_discover_tests(%s_tests)
`, name))
	default:
		sb.WriteString(fmt.Sprintf(`add_test(NAME %s_tests COMMAND %s_tests)
`, name, name))
	}

	return sb.String()
}
