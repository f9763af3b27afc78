package gateway

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		path string
		want Target
	}{
		{"/token", TargetAuth},
		{"/upload", TargetFile},
		{"/files/user@example.com", TargetFile},
		{"/files/download/abc123", TargetFile},
		{"/tasks", TargetTask},
		{"/tasks/42", TargetTask},
		{"/activities/", TargetTask},
		{"/activities/7", TargetTask},
		{"/settings", TargetTask},
		{"/register", TargetTask},
		// /token must match exactly; near misses fall through to the default.
		{"/tokens", TargetTask},
		{"/token/refresh", TargetTask},
		// unknown paths default to the task target
		{"/anything-else", TargetTask},
		{"", TargetTask},
	}

	for _, c := range cases {
		if got := Resolve(c.path); got != c.want {
			t.Errorf("Resolve(%q) = %s, want %s", c.path, got, c.want)
		}
	}
}

func TestEndpointsBaseURL(t *testing.T) {
	e := Endpoints{Auth: "http://a", Task: "http://t", File: "http://f"}
	if e.BaseURL(TargetAuth) != "http://a" {
		t.Error("auth base mismatch")
	}
	if e.BaseURL(TargetTask) != "http://t" {
		t.Error("task base mismatch")
	}
	if e.BaseURL(TargetFile) != "http://f" {
		t.Error("file base mismatch")
	}
}
