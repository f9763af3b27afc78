// Package fakeserver holds in-memory gin implementations of the three
// backends, faithful enough for package tests and local experiments: the
// auth service issues the user's email as the bearer token, the task
// service owns tasks, activities, settings and registration, and the file
// service stores uploads under generated ids.
package fakeserver

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// Cluster is the shared state behind the three handlers. One Cluster per
// test keeps users, tasks and files consistent across backends.
type Cluster struct {
	mu         sync.Mutex
	users      map[string]string // email -> password
	tasks      map[string][]taskRecord
	activities map[string][]activityRecord
	profiles   map[string]model.Profile
	files      map[string]fileEntry
	fileOrder  []string // upload order for stable listings
}

// New creates an empty cluster.
func New() *Cluster {
	gin.SetMode(gin.TestMode)
	return &Cluster{
		users:      map[string]string{},
		tasks:      map[string][]taskRecord{},
		activities: map[string][]activityRecord{},
		profiles:   map[string]model.Profile{},
		files:      map[string]fileEntry{},
	}
}

// AddUser registers an account without going through /register.
func (c *Cluster) AddUser(email, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[email] = password
}

func (c *Cluster) userExists(email string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.users[email]
	return ok
}

func detail(message string) gin.H {
	return gin.H{"detail": message}
}
