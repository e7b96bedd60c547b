package task

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/app/client"
	clientcfg "todoapp/internal/app/client/config"
	"todoapp/internal/app/server/api"
	servercfg "todoapp/internal/app/server/config"
	"todoapp/internal/domain/todo"
	"todoapp/internal/utils/logger"
)

// fakeService хранит задачи в памяти и ведет себя как todo.Service
type fakeService struct {
	mu    sync.Mutex
	next  int64
	todos map[int64]todo.Todo
	down  bool
}

func newFakeService() *fakeService {
	return &fakeService{todos: map[int64]todo.Todo{}}
}

func (s *fakeService) Health() todo.Health {
	return todo.Health{Status: "healthy", Service: "demo-backend"}
}

func (s *fakeService) List(context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return nil, todo.ErrStoreUnavailable
	}

	out := make([]todo.Todo, 0, len(s.todos))
	for id := s.next; id > 0; id-- {
		if t, ok := s.todos[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeService) Create(_ context.Context, title string, completed bool) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	t := todo.Todo{ID: s.next, Title: title, Completed: completed, CreatedAt: time.Now()}
	s.todos[t.ID] = t
	return &t, nil
}

func (s *fakeService) UpdateCompletion(_ context.Context, id int64, completed bool) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return nil, todo.ErrNotFound
	}
	t.Completed = completed
	s.todos[id] = t
	return &t, nil
}

func (s *fakeService) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.todos, id)
	return nil
}

func run(t *testing.T, svc todo.Servicer, args ...string) (string, error) {
	t.Helper()

	cfg := &servercfg.Config{Server: servercfg.Server{AllowedOrigins: []string{"*"}}}
	srv := httptest.NewServer(api.New(cfg, svc, logger.Discard()))
	t.Cleanup(srv.Close)

	app, err := client.New(&clientcfg.Config{ServerURL: srv.URL, Timeout: 2 * time.Second}, logger.Discard())
	require.NoError(t, err)

	root := &cobra.Command{Use: "todo", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().Bool(JSONFlag, false, "")
	root.AddCommand(Commands()...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err = root.ExecuteContext(client.WithApp(context.Background(), app))
	return out.String(), err
}

func TestHealth(t *testing.T) {
	out, err := run(t, newFakeService(), "health")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-backend: healthy")
}

func TestAddDoneList(t *testing.T) {
	svc := newFakeService()

	out, err := run(t, svc, "add", "buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Создана задача 1")
	assert.Contains(t, out, "buy milk")

	_, err = run(t, svc, "add", "walk dog")
	require.NoError(t, err)

	out, err = run(t, svc, "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "✓")

	out, err = run(t, svc, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Всего задач: 2")
	assert.Less(t, bytes.Index([]byte(out), []byte("walk dog")), bytes.Index([]byte(out), []byte("buy milk")))

	out, err = run(t, svc, "list", "--json")
	require.NoError(t, err)
	var todos []todo.Todo
	require.NoError(t, json.Unmarshal([]byte(out), &todos))
	require.Len(t, todos, 2)
	assert.True(t, todos[1].Completed)
	assert.False(t, todos[0].Completed)
}

func TestDone_NotFound(t *testing.T) {
	_, err := run(t, newFakeService(), "done", "99")
	require.Error(t, err)
	assert.Equal(t, "задача 99 не найдена", err.Error())
}

func TestRm_Idempotent(t *testing.T) {
	svc := newFakeService()

	for i := 0; i < 2; i++ {
		out, err := run(t, svc, "rm", "5")
		require.NoError(t, err)
		assert.Contains(t, out, "Задача 5 удалена")
	}
}

func TestList_StoreDown(t *testing.T) {
	svc := newFakeService()
	svc.down = true

	_, err := run(t, svc, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "база данных сервера недоступна")
}

func TestArgsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "add without title", args: []string{"add"}},
		{name: "add blank title", args: []string{"add", "  "}},
		{name: "done bad id", args: []string{"done", "abc"}},
		{name: "rm zero id", args: []string{"rm", "0"}},
		{name: "undone without id", args: []string{"undone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newFakeService(), tt.args...)
			assert.Error(t, err)
		})
	}
}
