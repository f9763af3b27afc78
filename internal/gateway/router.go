package gateway

import "strings"

// Target identifies one of the three backend services.
type Target string

const (
	TargetAuth Target = "auth"
	TargetTask Target = "task"
	TargetFile Target = "file"
)

// issuancePath is the credential-issuance call. It is the only path routed
// to the auth target, and the only call that must never carry a bearer
// header.
const issuancePath = "/token"

type rule struct {
	exact  string
	prefix string
	target Target
}

// Routing table, first match wins. Anything unmatched falls through to the
// task target: tasks, activities, settings and registration all live there.
var rules = []rule{
	{exact: issuancePath, target: TargetAuth},
	{prefix: "/upload", target: TargetFile},
	{prefix: "/files", target: TargetFile},
}

// Resolve maps a logical path to the backend target that serves it. The
// match is static, total and order-sensitive.
func Resolve(path string) Target {
	for _, r := range rules {
		if r.exact != "" && path == r.exact {
			return r.target
		}
		if r.prefix != "" && strings.HasPrefix(path, r.prefix) {
			return r.target
		}
	}
	return TargetTask
}

// Endpoints holds the three fixed backend base addresses.
type Endpoints struct {
	Auth string
	Task string
	File string
}

// BaseURL returns the base address for a target.
func (e Endpoints) BaseURL(t Target) string {
	switch t {
	case TargetAuth:
		return e.Auth
	case TargetFile:
		return e.File
	default:
		return e.Task
	}
}
