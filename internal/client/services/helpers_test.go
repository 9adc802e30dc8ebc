package services

import (
	"context"

	"github.com/printdvor/storefront-cli/internal/client/models"
)

// fakeSession is an in-memory SessionStore.
type fakeSession struct {
	user    *models.User
	token   string
	refresh string
}

func (f *fakeSession) User() *models.User { return f.user }

func (f *fakeSession) SetCredentials(_ context.Context, token, refresh string, user *models.User) error {
	f.token = token
	f.refresh = refresh
	f.user = user
	return nil
}

func (f *fakeSession) Logout(_ context.Context) error {
	f.token, f.refresh, f.user = "", "", nil
	return nil
}

// fakeCart is an in-memory CartStore.
type fakeCart struct {
	lines   []models.CartLine
	cleared bool
}

func (f *fakeCart) Lines() []models.CartLine { return f.lines }

func (f *fakeCart) TotalPrice() float64 {
	var total float64
	for _, l := range f.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (f *fakeCart) Clear(_ context.Context) {
	f.lines = nil
	f.cleared = true
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	successes []string
	warnings  []string
	errors    []string
}

func (n *recordingNotifier) Success(message, _ string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Warning(message, _ string) { n.warnings = append(n.warnings, message) }
func (n *recordingNotifier) Error(message, _ string)   { n.errors = append(n.errors, message) }
