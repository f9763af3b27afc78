package fakeserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// naiveISO is the timestamp shape the task backend emits: isoformat with no
// zone suffix.
const naiveISO = "2006-01-02T15:04:05.999999"

type taskRecord struct {
	ID               string                `json:"id"`
	Description      string                `json:"description"`
	Completed        bool                  `json:"completed"`
	EstimatedMinutes int                   `json:"estimated_minutes"`
	CreatedAt        string                `json:"created_at"`
	DueDate          string                `json:"due_date,omitempty"`
	Breakdown        []model.BreakdownStep `json:"breakdown,omitempty"`
}

type activityRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// TaskHandler serves tasks, activities, settings and registration, the same
// surface the real task service exposes.
func (c *Cluster) TaskHandler() http.Handler {
	r := gin.New()
	r.POST("/register", c.register)

	authed := r.Group("/", c.requireAuth)
	authed.GET("/tasks", c.listTasks)
	authed.POST("/tasks", c.createTask)
	authed.PATCH("/tasks/:id", c.toggleTask)
	authed.DELETE("/tasks/:id", c.deleteTask)
	authed.GET("/activities/", c.listActivities)
	authed.POST("/activities/", c.createActivity)
	authed.DELETE("/activities/:id", c.deleteActivity)
	authed.GET("/settings", c.getSettings)
	authed.POST("/settings", c.updateSettings)
	return r
}

// requireAuth accepts any bearer token naming a known account, since the
// real auth service issues emails as tokens.
func (c *Cluster) requireAuth(ctx *gin.Context) {
	email, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if !ok || !c.userExists(email) {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, detail("Could not validate credentials"))
		return
	}
	ctx.Set("user", email)
}

func (c *Cluster) register(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")
	if email == "" || password == "" {
		ctx.JSON(http.StatusBadRequest, detail("email and password are required"))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.users[email]; exists {
		ctx.JSON(http.StatusBadRequest, detail("Email already registered"))
		return
	}
	c.users[email] = password
	ctx.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

func (c *Cluster) listTasks(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.tasks[ctx.GetString("user")]
	if records == nil {
		records = []taskRecord{}
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *Cluster) createTask(ctx *gin.Context) {
	var payload struct {
		Description      string `json:"description"`
		Completed        bool   `json:"completed"`
		EstimatedMinutes int    `json:"estimated_minutes"`
		DueDate          string `json:"due_date"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Description) == "" {
		ctx.JSON(http.StatusBadRequest, detail("description is required"))
		return
	}

	now := time.Now().UTC()
	record := taskRecord{
		ID:               uuid.NewString(),
		Description:      payload.Description,
		Completed:        payload.Completed,
		EstimatedMinutes: payload.EstimatedMinutes,
		CreatedAt:        now.Format(naiveISO),
		DueDate:          payload.DueDate,
	}
	if record.EstimatedMinutes == 0 {
		// stand-in for the estimation service's fallback
		record.EstimatedMinutes = 30
	}
	if record.DueDate == "" {
		record.DueDate = now.Add(24 * time.Hour).Format(naiveISO)
	}
	record.Breakdown = []model.BreakdownStep{
		{Step: "prepare", Summary: "gather what the task needs", Percent: 30},
		{Step: "execute", Summary: payload.Description, Percent: 70},
	}

	user := ctx.GetString("user")
	c.mu.Lock()
	c.tasks[user] = append(c.tasks[user], record)
	c.mu.Unlock()
	ctx.JSON(http.StatusOK, record)
}

func (c *Cluster) toggleTask(ctx *gin.Context) {
	user, id := ctx.GetString("user"), ctx.Param("id")
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks[user] {
		if c.tasks[user][i].ID == id {
			c.tasks[user][i].Completed = !c.tasks[user][i].Completed
			ctx.JSON(http.StatusOK, c.tasks[user][i])
			return
		}
	}
	ctx.JSON(http.StatusNotFound, detail("Task not found"))
}

func (c *Cluster) deleteTask(ctx *gin.Context) {
	user, id := ctx.GetString("user"), ctx.Param("id")
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks[user] {
		if c.tasks[user][i].ID == id {
			c.tasks[user] = append(c.tasks[user][:i], c.tasks[user][i+1:]...)
			ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
			return
		}
	}
	ctx.JSON(http.StatusNotFound, detail("Task not found"))
}

func (c *Cluster) listActivities(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.activities[ctx.GetString("user")]
	if records == nil {
		records = []activityRecord{}
	}
	ctx.JSON(http.StatusOK, records)
}

func (c *Cluster) createActivity(ctx *gin.Context) {
	var payload struct {
		Name string `json:"name"`
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil || payload.Name == "" {
		ctx.JSON(http.StatusBadRequest, detail("name is required"))
		return
	}

	record := activityRecord{
		ID:   uuid.NewString(),
		Name: payload.Name,
		Date: payload.Date,
		Time: payload.Time,
	}
	user := ctx.GetString("user")
	c.mu.Lock()
	c.activities[user] = append(c.activities[user], record)
	c.mu.Unlock()
	ctx.JSON(http.StatusOK, record)
}

func (c *Cluster) deleteActivity(ctx *gin.Context) {
	user, id := ctx.GetString("user"), ctx.Param("id")
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.activities[user] {
		if c.activities[user][i].ID == id {
			c.activities[user] = append(c.activities[user][:i], c.activities[user][i+1:]...)
			ctx.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
			return
		}
	}
	ctx.JSON(http.StatusNotFound, detail("Activity not found"))
}

func (c *Cluster) getSettings(ctx *gin.Context) {
	user := ctx.GetString("user")
	c.mu.Lock()
	defer c.mu.Unlock()
	profile, ok := c.profiles[user]
	if !ok {
		profile = model.Profile{Email: user}
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *Cluster) updateSettings(ctx *gin.Context) {
	var profile model.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		ctx.JSON(http.StatusBadRequest, detail("invalid profile"))
		return
	}
	c.mu.Lock()
	c.profiles[ctx.GetString("user")] = profile
	c.mu.Unlock()
	ctx.JSON(http.StatusOK, profile)
}
