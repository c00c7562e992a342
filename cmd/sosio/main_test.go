package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sosio/internal/config"
	"sosio/internal/models"
	"sosio/internal/server"
	"sosio/internal/session"
	"sosio/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	configPath  string
	sessionPath string
	member      *models.Member
}

// newHarness runs the real API against an in-memory database and writes a
// client config pointing at it.
func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := &config.Config{
		Env:                "test",
		CORSOrigin:         "http://localhost:5173",
		JWTSecret:          "cli-test-secret",
		JWTExpirationDur:   time.Hour,
		AuthRequired:       true,
		LoginRatePerMinute: 100,
	}
	config.Set(cfg)

	db := testutil.SetupTestDB(t)
	srv := server.New(cfg, db, prometheus.NewRegistry())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
		testutil.TeardownTestDB(t, db)
	})

	member := testutil.CreateTestMemberWithEmail(t, db, "alice@example.com")
	testutil.SetBalance(t, db, member.ID, 1200)
	testutil.CreateTestTransactions(t, db, member.ID, 3)
	testutil.CreateTestLoan(t, db, member.ID, 1000, 250, models.LoanStatusActive)
	testutil.CreateTestInvestment(t, db, member.ID, 400)

	dir := t.TempDir()
	h := &harness{
		configPath:  filepath.Join(dir, "sosio.yaml"),
		sessionPath: filepath.Join(dir, "session.json"),
		member:      member,
	}
	yaml := fmt.Sprintf("api_url: %s\nsession_file: %s\ntimeout: 5s\n", ts.URL, h.sessionPath)
	require.NoError(t, os.WriteFile(h.configPath, []byte(yaml), 0o600))
	return h
}

func (h *harness) run(stdin string, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	full := append([]string{"-config", h.configPath}, args...)
	err = run(context.Background(), full, bytes.NewBufferString(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestCLI_LoginAndBrowse(t *testing.T) {
	h := newHarness(t)

	_, stderr, err := h.run("", "login", "-email", "alice@example.com", "-password", testutil.TestPassword)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Welcome back, alice!")

	s := session.NewFileStore(h.sessionPath).Load()
	require.True(t, s.Authenticated)
	assert.Equal(t, h.member.ID, s.User.ID)
	assert.Equal(t, "ALI", s.User.Codename)
	assert.NotEmpty(t, s.Token)

	stdout, _, err := h.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice@example.com")
	assert.Contains(t, stdout, "1200.00")

	stdout, _, err = h.run("", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total balance")
	assert.Contains(t, stdout, "400.00")
	assert.Contains(t, stdout, "2024-01-03")

	stdout, _, err = h.run("", "loans")
	require.NoError(t, err)
	assert.Contains(t, stdout, "250.00")

	stdout, _, err = h.run("", "investments")
	require.NoError(t, err)
	assert.Contains(t, stdout, "5.50%")

	stdout, _, err = h.run("", "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bulk transaction 2")

	export := filepath.Join(t.TempDir(), "history.xlsx")
	_, stderr, err = h.run("", "history", "-export", export)
	require.NoError(t, err)
	assert.Contains(t, stderr, "History exported")
	f, err := excelize.OpenFile(export)
	require.NoError(t, err)
	rows, err := f.GetRows("History")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	f.Close()

	_, stderr, err = h.run("", "logout")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Signed out")

	_, stderr, err = h.run("", "dashboard")
	require.Error(t, err)
	assert.Contains(t, stderr, "not signed in")
}

func TestCLI_LoginFailures(t *testing.T) {
	h := newHarness(t)

	_, stderr, err := h.run("", "login", "-email", "alice@example.com", "-password", "wrong")
	require.Error(t, err)
	assert.Contains(t, stderr, "Incorrect password. Please try again.")

	_, stderr, err = h.run("", "login", "-email", "ghost@example.com", "-password", "x")
	require.Error(t, err)
	assert.Contains(t, stderr, "No account found with this email address")

	_, stderr, err = h.run("", "login")
	require.Error(t, err)
	assert.Contains(t, stderr, "Email and password required")

	assert.False(t, session.NewFileStore(h.sessionPath).Load().Authenticated)
}

func TestCLI_LoginPromptsForPassword(t *testing.T) {
	h := newHarness(t)

	stdout, _, err := h.run(testutil.TestPassword+"\n", "login", "-email", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Password: ")
	assert.True(t, session.NewFileStore(h.sessionPath).Load().Authenticated)
}

func TestCLI_Health(t *testing.T) {
	h := newHarness(t)

	_, stderr, err := h.run("", "health")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Server is healthy")
}

func TestCLI_Unreachable(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "sosio.yaml")
	yaml := fmt.Sprintf("api_url: http://127.0.0.1:1\nsession_file: %s\ntimeout: 2s\n", filepath.Join(dir, "s.json"))
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o600))

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", configPath, "health"}, new(bytes.Buffer), new(bytes.Buffer), &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), connectMessage)
}

func TestCLI_UsageErrors(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), nil, new(bytes.Buffer), new(bytes.Buffer), &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: sosio")

	h := newHarness(t)
	_, stderr2, err := h.run("", "bogus")
	require.Error(t, err)
	assert.Contains(t, stderr2, "unknown command: bogus")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", cfg.APIURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("SOSIO_API_URL", "http://api.test")
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "http://api.test", cfg.APIURL)
	})

	t.Run("explicit missing file fails", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
