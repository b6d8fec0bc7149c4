package engine

import (
	"fmt"
	"strings"

	"github.com/quarry-cpp/quarry/internal/catalog"
)

// stubIncludes maps recognized library IDs to the include line their
// presence adds to the main-entry stub. Adding a recognized library is a
// table entry here, not new control flow.
var stubIncludes = map[string]string{
	"nlohmann_json": "#include <nlohmann/json.hpp>",
	"spdlog":        "#include <spdlog/spdlog.h>",
	"fmt":           "#include <fmt/format.h>",
	"cli11":         "#include <CLI/CLI.hpp>",
	"argparse":      "#include <argparse/argparse.hpp>",
	"cxxopts":       "#include <cxxopts.hpp>",
}

// stubIncludeOrder fixes the emission order of recognized includes.
var stubIncludeOrder = []string{"nlohmann_json", "spdlog", "fmt", "cli11", "argparse", "cxxopts"}

// cliEmitterOrder is the priority order when several CLI-parsing libraries
// are selected at once; only the first present is honored. The order is a
// convention, not a contract.
var cliEmitterOrder = []string{"cli11", "argparse", "cxxopts"}

// cliEmitters maps CLI library IDs to the argument-parsing snippet each
// contributes to main().
var cliEmitters = map[string]func(name string) string{
	"cli11": func(name string) string {
		return fmt.Sprintf(`
    CLI::App app{"%s application"};

    std::string name = "World";
    app.add_option("-n,--name", name, "Name to greet");

    CLI11_PARSE(app, argc, argv);
`, name)
	},
	"argparse": func(name string) string {
		return fmt.Sprintf(`
    argparse::ArgumentParser program("%s");

    program.add_argument("-n", "--name")
        .default_value(std::string("World"))
        .help("Name to greet");

    try {
        program.parse_args(argc, argv);
    } catch (const std::exception& err) {
        std::cerr << err.what() << std::endl;
        std::cerr << program;
        return 1;
    }

    auto name = program.get<std::string>("--name");
`, name)
	},
	"cxxopts": func(name string) string {
		return fmt.Sprintf(`
    cxxopts::Options options("%s", "%s application");

    options.add_options()
        ("n,name", "Name to greet", cxxopts::value<std::string>()->default_value("World"));

    auto result = options.parse(argc, argv);
    auto name = result["name"].as<std::string>();
`, name, name)
	},
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// GenerateLibHeader renders include/<name>/<name>.hpp.
func GenerateLibHeader(name string) string {
	guard := strings.ToUpper(name) + "_HPP"

	return fmt.Sprintf(`#ifndef %s
#define %s

#include <string>

namespace %s {

/**
 * @brief Greet function
 */
void greet();

/**
 * @brief Get the library version
 * @return Version string
 */
std::string version();

}  // namespace %s

#endif  // %s
`, guard, guard, name, name, guard)
}

// GenerateLibSource renders src/<name>.cpp. greet() uses the logging
// library's call form when spdlog is selected, else plain console output;
// version() always returns the fixed placeholder.
func GenerateLibSource(name string, libraryIDs []string) string {
	present := toSet(libraryIDs)

	includes := []string{fmt.Sprintf("#include <%s/%s.hpp>", name, name)}
	if present["spdlog"] {
		includes = append(includes, "#include <spdlog/spdlog.h>")
	}
	if present["fmt"] {
		includes = append(includes, "#include <fmt/format.h>")
	}
	includes = append(includes, "#include <iostream>")

	var sb strings.Builder
	sb.WriteString(strings.Join(includes, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("namespace %s {\n\n", name))
	sb.WriteString("void greet() {\n")

	if present["spdlog"] {
		sb.WriteString(fmt.Sprintf("    spdlog::info(\"Hello from %s!\");\n", name))
	} else {
		sb.WriteString(fmt.Sprintf("    std::cout << \"Hello from %s!\" << std::endl;\n", name))
	}

	sb.WriteString(`}

std::string version() {
    return "1.0.0";
}

}  // namespace ` + name + "\n")

	return sb.String()
}

// GenerateMainSource renders src/main.cpp for executable projects. At most
// one CLI-parsing library is honored, per cliEmitterOrder.
func GenerateMainSource(name string, libraryIDs []string) string {
	present := toSet(libraryIDs)

	var includes []string
	for _, id := range stubIncludeOrder {
		if present[id] {
			includes = append(includes, stubIncludes[id])
		}
	}

	includesStr := strings.Join(includes, "\n")
	if includesStr != "" {
		includesStr = "\n" + includesStr
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`#include <%s/%s.hpp>
#include <iostream>%s

int main(int argc, char* argv[]) {
`, name, name, includesStr))

	if present["spdlog"] {
		sb.WriteString(fmt.Sprintf("    spdlog::info(\"Starting %s v1.0.0\");\n", name))
	}

	emitted := false
	for _, id := range cliEmitterOrder {
		if present[id] {
			sb.WriteString(cliEmitters[id](name))
			emitted = true
			break
		}
	}
	if !emitted {
		sb.WriteString(`    (void)argc;
    (void)argv;
`)
	}

	sb.WriteString(fmt.Sprintf(`
    %s::greet();

    return 0;
}
`, name))

	return sb.String()
}

// GenerateTestMain renders tests/test_main.cpp for the given framework.
// Without a framework it falls back to a hand-rolled assert-based main.
func GenerateTestMain(name string, framework TestingFramework) string {
	switch framework {
	case FrameworkGoogleTest:
		capName := name
		if len(name) > 0 {
			capName = strings.ToUpper(name[:1]) + name[1:]
		}
		return fmt.Sprintf(`#include <gtest/gtest.h>
#include <%s/%s.hpp>

TEST(%sTest, VersionTest) {
    EXPECT_EQ(%s::version(), "1.0.0");
}

TEST(%sTest, GreetTest) {
    // Should not throw
    EXPECT_NO_THROW(%s::greet());
}
`, name, name, capName, name, capName, name)
	case FrameworkCatch2:
		return fmt.Sprintf(`#include <catch2/catch_test_macros.hpp>
#include <%s/%s.hpp>

TEST_CASE("%s::version returns correct version", "[version]") {
    REQUIRE(%s::version() == "1.0.0");
}

TEST_CASE("%s::greet does not throw", "[greet]") {
    REQUIRE_NOTHROW(%s::greet());
}
`, name, name, name, name, name, name)
	case FrameworkDoctest:
		return fmt.Sprintf(`#define DOCTEST_CONFIG_IMPLEMENT_WITH_MAIN
#include <doctest/doctest.h>
#include <%s/%s.hpp>

TEST_CASE("testing version") {
    CHECK(%s::version() == "1.0.0");
}

TEST_CASE("testing greet") {
    CHECK_NOTHROW(%s::greet());
}
`, name, name, name, name)
	default:
		return fmt.Sprintf(`// Basic test file - add a test framework for better testing support
#include <%s/%s.hpp>
#include <cassert>
#include <iostream>

int main() {
    assert(%s::version() == "1.0.0");
    %s::greet();
    std::cout << "All tests passed!" << std::endl;
    return 0;
}
`, name, name, name, name)
	}
}

// GenerateReadme renders README.md, varying the run/install instructions by
// project type.
func GenerateReadme(name string, libraries []catalog.Library, standard int, projectType ProjectType) string {
	var libList strings.Builder
	if len(libraries) > 0 {
		for _, lib := range libraries {
			libList.WriteString(fmt.Sprintf("- [%s](%s) - %s\n", lib.Name, lib.GitHubURL, lib.Description))
		}
	} else {
		libList.WriteString("No external dependencies.\n")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`# %s

A C++ project using modern CMake and FetchContent for dependency management.

## Requirements

- CMake 3.20 or higher
- C++%d compatible compiler

## Dependencies

%s
## Building

`+"```bash\nmkdir build && cd build\ncmake ..\ncmake --build .\n```"+`

`, name, standard, libList.String()))

	if projectType == ProjectLib {
		sb.WriteString(fmt.Sprintf(`## Installation

`+"```bash\ncd build\ncmake --install . --prefix /usr/local\n```"+`

## Usage

`+"```cmake\nfind_package(%s REQUIRED)\ntarget_link_libraries(your_target PRIVATE %s)\n```"+`

`, name, name))
	} else {
		sb.WriteString(fmt.Sprintf(`## Running

`+"```bash\n./build/%s\n```"+`

`, name))
	}

	srcTree := "│   ├── main.cpp\n│   └── " + name + ".cpp"
	if projectType == ProjectLib {
		srcTree = "│   └── " + name + ".cpp"
	}

	sb.WriteString(fmt.Sprintf(`## Testing

`+"```bash\ncd build\nctest --output-on-failure\n```"+`

## Project Structure

`+"```\n%s/\n├── .cmake/\n│   └── quarry/\n│       └── dependencies.cmake  # Managed by Quarry - regenerate to update\n├── CMakeLists.txt\n├── include/\n│   └── %s/\n│       └── %s.hpp\n├── src/\n%s\n├── tests/\n│   ├── CMakeLists.txt\n│   └── test_main.cpp\n└── README.md\n```"+`

## Updating Dependencies

To update dependencies, edit `+"`quarry.yaml`"+` and run:
`+"```bash\nquarry deps -f quarry.yaml > .cmake/quarry/dependencies.cmake\n```"+`

This regenerates the dependency wiring without modifying your CMakeLists.txt.

## License

MIT License
`, name, name, name, srcTree))

	return sb.String()
}

// GenerateGitignore renders the .gitignore stub.
func GenerateGitignore() string {
	return `# Build directories
build/
cmake-build-*/
out/

# IDE
.idea/
.vscode/
*.swp
*.swo
*~

# Compiled files
*.o
*.obj
*.a
*.lib
*.so
*.dylib
*.dll

# CMake
CMakeFiles/
CMakeCache.txt
cmake_install.cmake
Makefile
compile_commands.json

# Testing
Testing/

# Package
*.zip
*.tar.gz
`
}
