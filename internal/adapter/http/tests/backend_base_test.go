package tests

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/adapter/http/dto"
	"taskdesk/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const validToken = "valid-token"

// fakeBoard is an in-memory board API served by gin.
type fakeBoard struct {
	mu sync.Mutex

	tasks   []dto.Task
	columns []dto.Column
	users   []dto.User
	ticks   []dto.Tick
	nextID  uint64

	failUpdates map[uint64]bool
	updates     []uint64
	lastHeaders http.Header
}

func newFakeBoard() *fakeBoard {
	column := uint64(10)
	user := uint64(1)
	red := 3
	due := "2026-02-20"
	return &fakeBoard{
		tasks: []dto.Task{
			{ID: 1, Title: "Brief", ColumnID: &column, SortOrder: 0},
			{ID: 2, Title: "Moodboard", ColumnID: &column, SortOrder: 1, UserID: &user},
			{ID: 3, Title: "Logo", ColumnID: &column, SortOrder: 2, StatusID: &red, DueDate: &due, Tags: "#design#logo"},
			{ID: 4, Title: "Signage", SortOrder: 0},
		},
		columns: []dto.Column{
			{ID: 10, Title: "Todo", Order: 0},
			{ID: 20, Title: "Done", Order: 1},
		},
		users: []dto.User{
			{ID: 1, Name: "Ada", Email: "ada@coffee.lab", IsAdmin: true},
		},
		ticks: []dto.Tick{
			{ID: 1, TaskID: 2, Text: "Palette"},
		},
		nextID:      100,
		failUpdates: map[uint64]bool{},
	}
}

func abortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, apierrors.JsonErr{ErrDetails: apierrors.Err{Code: status, Message: message}})
}

func (b *fakeBoard) routes() *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.lastHeaders = c.Request.Header.Clone()
		b.mu.Unlock()
		c.Next()
	})

	api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	api.POST("/login", b.login)

	protected := api.Group("")
	protected.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+validToken {
			abortWith(c, http.StatusUnauthorized, "jwt expired")
			return
		}
		c.Next()
	})

	protected.GET("/tasks", b.listTasks)
	protected.POST("/tasks", b.createTask)
	protected.PUT("/tasks/:id", b.updateTask)
	protected.DELETE("/tasks/:id", b.deleteTask)
	protected.GET("/columns", b.listColumns)
	protected.POST("/columns", b.createColumn)
	protected.GET("/users", b.listUsers)
	protected.GET("/ticks", b.listTicks)
	protected.GET("/whoAmI", func(c *gin.Context) { c.JSON(http.StatusOK, b.users[0]) })
	protected.DELETE("/logout", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return router
}

func (b *fakeBoard) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email != "ada@coffee.lab" || req.Password != "secret" {
		abortWith(c, http.StatusUnauthorized, "wrong credentials")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: validToken})
}

func (b *fakeBoard) listTasks(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.tasks)
}

func (b *fakeBoard) createTask(c *gin.Context) {
	var item dto.Task
	if err := c.ShouldBindJSON(&item); err != nil {
		abortWith(c, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	item.ID = b.nextID
	b.tasks = append(b.tasks, item)
	c.JSON(http.StatusCreated, item)
}

func (b *fakeBoard) updateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWith(c, http.StatusBadRequest, "invalid id")
		return
	}
	var item dto.Task
	if err := c.ShouldBindJSON(&item); err != nil {
		abortWith(c, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.updates = append(b.updates, id)
	if b.failUpdates[id] {
		abortWith(c, http.StatusInternalServerError, "database is locked")
		return
	}
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			item.ID = id
			b.tasks[i] = item
			c.JSON(http.StatusOK, item)
			return
		}
	}
	abortWith(c, http.StatusNotFound, "task not found")
}

func (b *fakeBoard) deleteTask(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	abortWith(c, http.StatusNotFound, "task not found")
}

func (b *fakeBoard) listColumns(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.columns)
}

func (b *fakeBoard) createColumn(c *gin.Context) {
	var item dto.Column
	if err := c.ShouldBindJSON(&item); err != nil {
		abortWith(c, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	item.ID = b.nextID
	b.columns = append(b.columns, item)
	c.JSON(http.StatusCreated, item)
}

func (b *fakeBoard) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, b.users)
}

func (b *fakeBoard) listTicks(c *gin.Context) {
	c.JSON(http.StatusOK, b.ticks)
}

func (b *fakeBoard) task(id uint64) (dto.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, task := range b.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return dto.Task{}, false
}

func (b *fakeBoard) headers() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastHeaders
}

type memoryTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memoryTokens) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memoryTokens) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokens) RemoveToken() error {
	return m.SetToken("")
}

// BackendSuiteBase serves a fresh fake board for every test.
type BackendSuiteBase struct {
	suite.Suite

	Board  *fakeBoard
	Server *httptest.Server
	Tokens *memoryTokens
	Client *httpadapter.Client
}

func (s *BackendSuiteBase) SetupTest() {
	s.Board = newFakeBoard()
	s.Server = httptest.NewServer(s.Board.routes())
	s.Tokens = &memoryTokens{token: validToken}

	client, err := httpadapter.NewClient(httpadapter.Config{
		BaseURL:  s.Server.URL + "/api/",
		Language: "ru",
		Tokens:   s.Tokens,
	})
	s.Require().NoError(err)
	s.Client = client
}

func (s *BackendSuiteBase) TearDownTest() {
	if s.Server != nil {
		s.Server.Close()
	}
}
