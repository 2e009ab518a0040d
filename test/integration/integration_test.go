//go:build integration

// Package integration runs the cash book API feature files with godog.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/cashbook/backend/test/integration/steps"
)

// TestFeatures runs every scenario under features/ against a live server.
// Set GODOG_TAGS to run a subset, e.g. GODOG_TAGS=@payroll.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		TestingT: t,
		// scenarios share one database and one rate limit store
		Concurrency: 1,
		Tags:        os.Getenv("GODOG_TAGS"),
	}

	suite := godog.TestSuite{
		Name:                 "cashbook-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite failed with status %d", status)
	}
}
