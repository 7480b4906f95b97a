package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-18"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2026-10-18\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.production())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)

	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 90000, cfg.RedisExpSecond)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "token-usage", cfg.KafkaUsageTopic)

	assert.Equal(t, 604800, cfg.JWTExpSecond)
	assert.Equal(t, 60, cfg.LLMTimeoutSecond)
	assert.Equal(t, 2, cfg.LLMMaxRetries)
	assert.Empty(t, cfg.AuthProviderURL)

	assert.Equal(t, 100000, cfg.UsageDailyTokenLimit)
	assert.Equal(t, 10.0, cfg.AIRatePerMinute)
	assert.Equal(t, 3, cfg.AIRateBurst)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_CORS_ORIGINS", "https://diet.example.com/, https://admin.example.com")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")

	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_EXP_SECOND", "120")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_USAGE_TOPIC", "usage")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("AUTH_PROVIDER_URL", "https://auth.example.com")
	t.Setenv("USAGE_DAILY_TOKEN_LIMIT", "0")
	t.Setenv("AI_RATE_PER_MINUTE", "2.5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.production())
	assert.Equal(t, []string{"https://diet.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 120, cfg.RedisExpSecond)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "usage", cfg.KafkaUsageTopic)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300, cfg.JWTExpSecond)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, 0, cfg.UsageDailyTokenLimit)
	assert.Equal(t, 2.5, cfg.AIRatePerMinute)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "bad port",
			env:     map[string]string{"POSTGRES_PORT": "five"},
			wantErr: "POSTGRES_PORT",
		},
		{
			name:    "bad rate",
			env:     map[string]string{"AI_RATE_PER_MINUTE": "fast"},
			wantErr: "AI_RATE_PER_MINUTE",
		},
		{
			name:    "negative retries",
			env:     map[string]string{"LLM_MAX_RETRIES": "-1"},
			wantErr: "LLM_MAX_RETRIES",
		},
		{
			name:    "production without auth provider",
			env:     map[string]string{"APP_ENV": "production"},
			wantErr: "AUTH_PROVIDER_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type apiUser struct {
	ID          string  `json:"id"`
	DeviceID    *string `json:"device_id"`
	IsAnonymous bool    `json:"is_anonymous"`
}

// call sends body as JSON with an optional bearer token and decodes the
// response into out when it is not nil.
func call(t *testing.T, method, url, token, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	resetEnv()
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	cfg.AppHost = "127.0.0.1"
	cfg.AppPort = freePort(t)
	cfg.LogLevel = "debug"
	cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDB = pgHost, pgPort.Int(), "user", "password", "testdb"
	cfg.RedisHost, cfg.RedisPort = redisHost, redisPort.Int()
	cfg.JWTSecretKey = "testsecret"

	testCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	base := "http://" + cfg.AppHost + ":" + cfg.AppPort
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)

	// Two parallel first contacts of the same device converge on one account.
	ids := make([]string, 2)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := http.Post(base+"/api/users", "application/json", strings.NewReader(`{"device_id":"abc-123"}`))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body struct {
				User struct {
					ID          string `json:"id"`
					IsAnonymous bool   `json:"is_anonymous"`
				} `json:"user"`
				Token string `json:"token"`
			}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.True(t, body.User.IsAnonymous)
			assert.NotEmpty(t, body.Token)
			ids[i] = body.User.ID
		}(i)
	}
	wg.Wait()
	require.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])

	resp, err := http.Get(base + "/api/plans")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	type session struct {
		User  apiUser `json:"user"`
		Token string  `json:"token"`
	}
	type plans struct {
		Plans []struct {
			ID       string          `json:"id"`
			Name     string          `json:"name"`
			PlanData json.RawMessage `json:"plan_data"`
		} `json:"plans"`
	}

	// A saved plan comes back from JSONB with the same document.
	var guestA session
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/api/users", "", `{"device_id":"device-a"}`, &guestA))
	planData := `{"summary":"Cut","dailyTargets":{"protein":150,"carbs":200,"fats":60,"calories":2000},` +
		`"meals":[{"name":"Breakfast","items":[{"name":"Oats","amount":"80 g","macros":{"protein":10,"carbs":54,"fats":5,"calories":300}}]}],"tips":["Drink water"]}`
	assert.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/plans", guestA.Token,
		`{"name":"Cut week","plan_data":`+planData+`,"is_favorite":true}`, nil))

	var listed plans
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/api/plans", guestA.Token, "", &listed))
	require.Len(t, listed.Plans, 1)
	assert.Equal(t, "Cut week", listed.Plans[0].Name)
	assert.JSONEq(t, planData, string(listed.Plans[0].PlanData))

	// Sign-in from the first device upgrades its guest row in place.
	var first session
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/api/users", "",
		`{"action":"sync","user_id":"ext-1","email":"a@b.com","username":"Ann","device_id":"device-a"}`, &first))
	assert.Equal(t, guestA.User.ID, first.User.ID)
	assert.False(t, first.User.IsAnonymous)

	// Signing in on a second device joins the same account and brings its guest plans.
	var guestB session
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/api/users", "", `{"device_id":"device-b"}`, &guestB))
	assert.NotEqual(t, first.User.ID, guestB.User.ID)
	assert.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/plans", guestB.Token,
		`{"name":"Guest plan","plan_data":{"meals":[]}}`, nil))

	var second session
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/api/users", "",
		`{"action":"sync","user_id":"ext-1","email":"a@b.com","username":"Ann","device_id":"device-b"}`, &second))
	assert.Equal(t, first.User.ID, second.User.ID)

	var merged plans
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/api/plans", second.Token, "", &merged))
	names := make([]string, 0, len(merged.Plans))
	for _, p := range merged.Plans {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Cut week", "Guest plan"}, names)

	// The first device now belongs to a registered account.
	assert.Equal(t, http.StatusUnauthorized, call(t, http.MethodPost, base+"/api/users", "", `{"device_id":"device-a"}`, nil))

	// Registering from that device creates an account without taking the device.
	var registered session
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, base+"/api/auth", "",
		`{"action":"register","email":"new@b.com","password":"secret1","username":"New","device_id":"device-a"}`, &registered))
	assert.NotEqual(t, first.User.ID, registered.User.ID)
	assert.Nil(t, registered.User.DeviceID)

	assert.Equal(t, http.StatusBadRequest, call(t, http.MethodPost, base+"/api/users", "", `{}`, nil))

	cancel()
	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
