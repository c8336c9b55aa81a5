package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// TestingScanner checks for test frameworks, coverage tooling, and test
// directories.
type TestingScanner struct {
	base
}

func (s *TestingScanner) Category() models.Category { return models.CategoryTesting }
func (s *TestingScanner) Name() string              { return "Testing" }
func (s *TestingScanner) Description() string {
	return "Checks for test frameworks, coverage, and test directories"
}

func (s *TestingScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	return Score(s.Category(), s.runChecks(root, stats, s.Checks()))
}

func (s *TestingScanner) Checks() []Check {
	return []Check{
		universal("Test directory", 2.0, "tests/", "test/", "__tests__/", "spec/"),
		universal("E2E/Integration tests", 1.2, "e2e/", "integration/", "tests/e2e/", "tests/integration/"),

		universal("Codecov config", 1.0, ".codecov.yml", "codecov.yml"),
		universal("Coveralls config", 0.8, ".coveralls.yml"),
		universal("SonarQube", 1.0, "sonar-project.properties"),

		py("pytest", 1.5, "pytest.ini", "pyproject.toml", "setup.cfg", "conftest.py"),
		py("Tox", 1.0, "tox.ini"),
		py("Nox", 1.0, "noxfile.py"),
		py("Coverage.py", 1.5, ".coveragerc", "pyproject.toml"),
		py("pytest fixtures", 1.0, "tests/conftest.py", "conftest.py"),
		py("Hypothesis", 1.0, ".hypothesis/*", "conftest.py"),

		js("Jest", 1.5, "jest.config.*", "jest.setup.*"),
		js("Vitest", 1.5, "vitest.config.*"),
		js("Mocha", 1.0, ".mocharc.*", "mocha.opts"),
		js("Karma", 0.8, "karma.conf.js"),
		js("AVA", 1.0, "ava.config.*"),
		js("Cypress", 1.2, "cypress.config.*", "cypress.json"),
		js("Playwright", 1.5, "playwright.config.*"),
		js("Nightwatch", 1.0, "nightwatch.conf.js"),
		js("WebdriverIO", 1.0, "wdio.conf.js"),
		js("NYC coverage", 1.2, ".nycrc*", "nyc.config.js"),
		js("c8 coverage", 1.0, "c8.config.*"),
		js("Puppeteer", 1.0, "puppeteer.config.*"),
		js("Storybook", 1.0, "storybook/*", ".storybook/*"),

		golang("Go tests", 1.5, "*_test.go"),
		golang("Go testdata", 1.0, "testdata/"),
		golang("Go linting", 1.0, ".golangci.yml"),
		golang("Go modules", 0.8, "go.mod"),

		rust("Rust tests dir", 1.5, "tests/"),
		rust("Rust benchmarks", 1.0, "benches/"),
		rust("Rust examples", 0.8, "examples/"),
		rust("Cargo test config", 0.8, "Cargo.toml"),
		rust("Proptest", 1.0, "proptest-regressions/"),

		ruby("RSpec specs", 1.5, "spec/"),
		ruby("RSpec config", 1.2, ".rspec"),
		ruby("RSpec helpers", 1.0, "spec/spec_helper.rb", "spec/rails_helper.rb"),
		ruby("Minitest", 1.2, "test/"),
		ruby("Minitest helper", 1.0, "test/test_helper.rb"),
		ruby("Cucumber features", 1.0, "features/"),
		ruby("Cucumber config", 1.0, "cucumber.yml"),
		ruby("SimpleCov", 1.2, ".simplecov"),
		ruby("Guard", 0.8, "Guardfile"),

		java("Maven/Gradle test dir", 1.5, "src/test/"),
		java("Test sources", 1.2, "src/test/java/", "src/test/kotlin/"),
		java("Test resources", 1.0, "src/test/resources/"),
		java("JUnit config", 1.0, "junit-platform.properties"),
		java("TestNG", 1.0, "testng.xml"),
		java("JaCoCo coverage", 1.2, "jacoco.exec", "jacoco/"),
		java("Test files", 1.0, "**/src/test/**/*Test.java", "**/src/test/**/*Test.kt"),
		java("Mockito", 0.8, "mockito-extensions/"),

		swift("Swift tests dir", 1.5, "Tests/"),
		swift("XCTest", 1.2, "*Tests/", "*Tests.swift"),
		swift("UI Tests", 1.0, "UITests/"),
		swift("Test plan", 1.0, "*.xctestplan"),
		swift("Snapshot tests", 1.0, "Snapshots/", "__Snapshots__/"),

		csharp("Test project", 1.5, "*.Tests/", "*.Test/"),
		csharp("Test csproj", 1.2, "*.Tests.csproj", "*.Test.csproj"),
		csharp("xUnit config", 1.0, "xunit.runner.json"),
		csharp("Unit tests", 1.0, "*.UnitTests/"),
		csharp("Integration tests", 1.0, "*.IntegrationTests/"),
		csharp("Coverlet coverage", 1.0, "coverlet.runsettings"),

		cpp("C++ tests dir", 1.5, "test/", "tests/"),
		cpp("Test files", 1.0, "*_test.cpp", "*_test.cc"),
		cpp("Google Test", 1.2, "googletest/", "gtest/"),
		cpp("Catch2", 1.2, "catch2/", "catch.hpp"),
		cpp("doctest", 1.0, "doctest/"),
		cpp("CTest", 1.0, "CTestTestfile.cmake"),
		cpp("Test makefile", 0.8, "Makefile.test"),

		php("PHPUnit", 1.5, "phpunit.xml", "phpunit.xml.dist"),
		php("PHP tests dir", 1.2, "tests/", "test/"),
		php("Codeception", 1.2, "codeception.yml"),
		php("Behat", 1.0, "behat.yml"),
		php("Pest", 1.2, "pest.php"),
		php("PHPSpec", 1.0, "phpspec.yml"),

		elixir("Elixir test dir", 1.5, "test/"),
		elixir("Test helper", 1.0, "test/test_helper.exs"),
		elixir("Test support", 0.8, "test/support/"),
		elixir("Formatter config", 0.8, ".formatter.exs"),

		dart("Dart test dir", 1.5, "test/"),
		dart("Integration tests", 1.2, "integration_test/"),
		dart("Test files", 1.0, "*_test.dart"),
		dart("Flutter driver tests", 1.0, "test_driver/"),
		dart("Dart coverage", 1.0, "coverage/"),

		universal("k6 load testing", 1.0, "k6.js", "k6/*.js"),
		universal("Locust", 1.0, "locustfile.py"),
		universal("Artillery", 1.0, "artillery.yml"),
		universal("JMeter", 0.8, "jmeter/*.jmx"),
		universal("Gatling", 1.0, "gatling/"),
	}
}
