// Package taskscache реализует кратковременный кеш ответов getTasks.
//
// Ключ кеша вычисляется как md5 от идентификатора пространства и JSON запроса,
// поэтому одинаковые фильтры в одном пространстве попадают в одну запись.
// Просроченные записи удаляются при чтении и периодически через Purge.
// Ответ хранится в виде JSON, каждый Get возвращает независимую копию.
package taskscache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/models"
)

const DefaultTTL = 5 * time.Minute

type entry struct {
	Payload   []byte
	CreatedAt time.Time
}

type TasksCache struct {
	m   map[string]entry
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
}

func NewTasksCache(ttl time.Duration) *TasksCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TasksCache{
		m:   make(map[string]entry),
		ttl: ttl,
		now: time.Now,
	}
}

// Key ключ записи для запроса в пространстве spaceID
func Key(spaceID string, req models.GetTasksRequest) string {
	b, _ := json.Marshal(req)
	sum := md5.Sum([]byte(spaceID + ":" + string(b)))
	return hex.EncodeToString(sum[:])
}

// Get возвращает ответ из кеша. Второе значение false, если записи нет или она истекла.
func (c *TasksCache) Get(key string) (models.GetTasksResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return models.GetTasksResponse{}, false
	}
	if c.expired(e) {
		delete(c.m, key)
		return models.GetTasksResponse{}, false
	}
	var resp models.GetTasksResponse
	if err := json.Unmarshal(e.Payload, &resp); err != nil {
		delete(c.m, key)
		return models.GetTasksResponse{}, false
	}
	return resp, true
}

func (c *TasksCache) Store(key string, resp models.GetTasksResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		slog.Warn("Tasks cache store skipped", "err", err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry{Payload: payload, CreatedAt: c.now()}
}

func (c *TasksCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

// Purge удаляет просроченные записи, возвращает количество удаленных
func (c *TasksCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.m {
		if c.expired(e) {
			delete(c.m, k)
			n++
		}
	}
	return n
}

func (c *TasksCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (c *TasksCache) expired(e entry) bool {
	return !c.now().Before(e.CreatedAt.Add(c.ttl))
}
