package e2e_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository/blob"
	pgRepo "github.com/marcos-nsantos/personal-assistant/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/database"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/server"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/storage"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	contactsKey    = "addressbook.json"
)

// Result mirrors one output line of the command loop.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Data    any    `json:"data"`
	Warning string `json:"warning"`
}

type TestApp struct {
	Store  repository.SnapshotStore
	Router *server.Router
	Logger *zap.Logger
}

// newFileStore returns a snapshot store over dir, the same way the file
// driver is wired at startup.
func newFileStore(t *testing.T, dir string) repository.SnapshotStore {
	t.Helper()

	fs, err := storage.NewFileStorage(dir)
	require.NoError(t, err)
	return blob.NewSnapshotStore(fs, contactsKey, "", zap.NewNop())
}

// newPostgresStore starts a postgres container and returns a migrated store.
func newPostgresStore(t *testing.T) repository.SnapshotStore {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool))

	return pgRepo.NewSnapshotStore(pool)
}

// startApp loads the service from store and wires the full command stack,
// like a fresh process start.
func startApp(t *testing.T, store repository.SnapshotStore) *TestApp {
	t.Helper()

	logger := zap.NewNop()
	svc := operations.NewService(store, operations.Config{}, logger)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	router := server.NewRouter(server.RouterConfig{
		ContactHandler: handler.NewContactHandler(svc),
		NoteHandler:    handler.NewNoteHandler(svc),
		SearchHandler:  handler.NewSearchHandler(svc),
		Logger:         logger,
	})

	return &TestApp{Store: store, Router: router, Logger: logger}
}

// call sends one command through the JSON-lines loop and decodes its result.
func (app *TestApp) call(t *testing.T, function string, args map[string]any) Result {
	t.Helper()

	results := app.run(t, map[string]any{"function": function, "arguments": args})
	require.Len(t, results, 1)
	return results[0]
}

func (app *TestApp) run(t *testing.T, commands ...map[string]any) []Result {
	t.Helper()

	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		line, err := json.Marshal(cmd)
		require.NoError(t, err)
		lines = append(lines, string(line))
	}
	return app.runRaw(t, strings.Join(lines, "\n"))
}

func (app *TestApp) runRaw(t *testing.T, input string) []Result {
	t.Helper()

	var out bytes.Buffer
	srv := server.NewServer(server.ServerConfig{
		Executor: app.Router,
		Input:    strings.NewReader(input),
		Output:   &out,
		Logger:   app.Logger,
	})
	require.NoError(t, srv.Serve(context.Background()))

	var results []Result
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var res Result
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &res), "line: %s", scanner.Text())
		results = append(results, res)
	}
	return results
}

func dataMap(t *testing.T, res Result) map[string]any {
	t.Helper()
	m, ok := res.Data.(map[string]any)
	require.True(t, ok, "data is %T", res.Data)
	return m
}

func dataList(t *testing.T, res Result) []any {
	t.Helper()
	l, ok := res.Data.([]any)
	require.True(t, ok, "data is %T", res.Data)
	return l
}

func requireSuccess(t *testing.T, res Result) {
	t.Helper()
	require.True(t, res.Success, fmt.Sprintf("%s: %s", res.Code, res.Message))
}
