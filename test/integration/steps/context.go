// Package steps holds the godog step definitions for the cash book API.
package steps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/cashbook/backend/config"
	"github.com/cashbook/backend/internal/infra/dependency"
	"github.com/cashbook/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

	// maxAuthAttempts is the per-client budget of the auth endpoints per window.
	maxAuthAttempts = 5
)

// defaultToday is where the clock sits until a scenario moves it.
var defaultToday = time.Date(2024, time.March, 28, 10, 0, 0, 0, time.UTC)

// server is shared by every scenario of the suite.
var server struct {
	uri   string
	http  *http.Server
	db    *mock.Db
	redis *redis.Client
	clock *mock.Clock
}

type testContext struct {
	client   *http.Client
	headers  map[string]string
	token    string
	ids      map[string]string
	response *response
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

// InitializeTestSuite starts the API once for the whole suite.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(startServer)
	ctx.AfterSuite(stopServer)
}

// InitializeScenario registers every step and resets shared state before each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Auth steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Fixture steps
	ctx.Given(`^an employee "([^"]*)" exists with salary type "([^"]*)" and base salary "([^"]*)"$`, test.anEmployeeExists)
	ctx.Given(`^an? "([^"]*)" transaction of "([^"]*)" exists on "([^"]*)" in category "([^"]*)"$`, test.aTransactionExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should start with "([^"]*)"$`, test.theResponseBodyShouldStartWith)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func startServer() {
	server.db = mock.NewDb()
	server.redis = mock.NewRedis()
	server.clock = mock.NewClock(defaultToday)

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		JWT:       config.JWTConfig{Secret: testJWTSecret, AccessTokenExpiry: time.Hour},
		Auth:      config.AuthConfig{BcryptCost: bcrypt.MinCost},
		RateLimit: config.RateLimitConfig{Enabled: true, MaxAttempts: maxAuthAttempts, Window: time.Minute},
		Report:    config.ReportConfig{WeekStart: "sunday", Currency: "IDR", CompanyName: "Toko Maju"},
		Payroll:   config.PayrollConfig{EmployeeDeletePolicy: "restrict", Category: "Payroll"},
	}

	injector := dependency.NewInjector(cfg, server.db.DbConn, server.redis, server.clock)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	server.uri = "http://" + listener.Addr().String()
	server.http = &http.Server{Handler: injector.Router.Setup(cfg.Server.Environment)}

	go func() {
		if err := server.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()
}

func stopServer() {
	if server.http == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.http.Shutdown(ctx)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.token = ""
	t.ids = make(map[string]string)
	t.response = nil

	server.clock.Set(defaultToday)
	if err := mock.ClearRedis(server.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return server.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	for i := 0; i < 50; i++ {
		resp, err := t.client.Get(server.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("api server did not become healthy")
}

func (t *testContext) todayIs(date string) error {
	today, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}
	server.clock.Set(today.Add(10 * time.Hour))
	return nil
}
