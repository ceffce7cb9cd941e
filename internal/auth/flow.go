// Package auth runs the login and registration forms: it exchanges credentials
// for a bearer token, persists it and hands off to the dashboard.
package auth

import (
	"context"
	"errors"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/view"

	log "github.com/sirupsen/logrus"
)

// element identifiers of the inline error regions
const (
	LoginErrorID    = "login-error"
	RegisterErrorID = "register-error"
)

const (
	MsgInvalidCredentials = "Invalid login or password"
	MsgRegistrationFailed = "Registration failed"
	MsgPasswordMismatch   = "Passwords do not match"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

//go:generate mockgen -source=$GOFILE -destination=mock_client_test.go -package=auth_test

type authClient interface {
	Login(ctx context.Context, email, password string) (*api.Token, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.User, error)
}

type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type Flow struct {
	client authClient
	store  session.Store
	view   view.Bindings
	nav    view.Navigator
}

func NewFlow(client authClient, store session.Store, bindings view.Bindings, nav view.Navigator) *Flow {
	return &Flow{
		client: client,
		store:  store,
		view:   bindings,
		nav:    nav,
	}
}

// RedirectIfLoggedIn treats any stored token as a live session, without asking the backend.
func (f *Flow) RedirectIfLoggedIn(ctx context.Context) bool {
	if !session.HasToken(ctx, f.store) {
		return false
	}
	log.Debugln("token present, skipping login")
	f.nav.Navigate(view.PageDashboard)
	return true
}

// Login shows failures inline in the login error region and never navigates on failure.
func (f *Flow) Login(ctx context.Context, email, password string) error {
	f.clearError(LoginErrorID)

	if err := f.exchange(ctx, email, password); err != nil {
		log.Debugf("login failed: %s", err)
		f.showError(LoginErrorID, messageFor(err, MsgInvalidCredentials))
		return err
	}

	f.nav.Navigate(view.PageDashboard)
	return nil
}

// Register creates the account and logs straight in with the same credentials.
// A failing auto-login is reported in the register error region like any other
// registration failure.
func (f *Flow) Register(ctx context.Context, form RegisterForm) error {
	f.clearError(RegisterErrorID)

	if form.Password != form.ConfirmPassword {
		f.showError(RegisterErrorID, MsgPasswordMismatch)
		return ErrPasswordMismatch
	}

	if _, err := f.client.Register(ctx, api.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	}); err != nil {
		log.Debugf("register failed: %s", err)
		f.showError(RegisterErrorID, messageFor(err, MsgRegistrationFailed))
		return err
	}

	if err := f.exchange(ctx, form.Email, form.Password); err != nil {
		log.Debugf("login after register failed: %s", err)
		f.showError(RegisterErrorID, messageFor(err, MsgRegistrationFailed))
		return err
	}

	f.nav.Navigate(view.PageDashboard)
	return nil
}

// exchange swaps credentials for a token and persists it.
func (f *Flow) exchange(ctx context.Context, email, password string) error {
	token, err := f.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return f.store.Set(ctx, token.AccessToken)
}

func (f *Flow) clearError(id string) {
	f.view.SetText(id, "")
	f.view.Hide(id)
}

func (f *Flow) showError(id, msg string) {
	f.view.SetText(id, msg)
	f.view.Show(id)
}

// messageFor prefers the backend's own message; anything else gets the default.
func messageFor(err error, fallback string) string {
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return fallback
}
