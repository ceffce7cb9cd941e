package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/auth"
	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/view"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type flowFixture struct {
	client *MockauthClient
	store  *session.MemoryStore
	view   *view.Memory
	nav    *view.RecordingNavigator
	flow   *auth.Flow
}

func newFlowFixture(t *testing.T) *flowFixture {
	ctrl := gomock.NewController(t)
	f := &flowFixture{
		client: NewMockauthClient(ctrl),
		store:  session.NewMemoryStore(),
		view:   view.NewMemory(),
		nav:    view.NewRecordingNavigator(),
	}
	f.flow = auth.NewFlow(f.client, f.store, f.view, f.nav)
	return f
}

func (f *flowFixture) token(t *testing.T) string {
	token, err := f.store.Get(context.Background())
	if errors.Is(err, session.ErrNoToken) {
		return ""
	}
	require.NoError(t, err)
	return token
}

func TestFlow_Login_Success(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	f.view.SetText(auth.LoginErrorID, "old error")
	f.view.Show(auth.LoginErrorID)

	f.client.EXPECT().
		Login(gomock.Any(), "a@b.c", "pw").
		Return(&api.Token{AccessToken: "T", TokenType: "bearer"}, nil)

	require.NoError(t, f.flow.Login(ctx, "a@b.c", "pw"))

	assert.Equal(t, "T", f.token(t))
	assert.Equal(t, []view.Page{view.PageDashboard}, f.nav.Pages())
	assert.False(t, f.view.Visible(auth.LoginErrorID))
	assert.Empty(t, f.view.Text(auth.LoginErrorID))
}

func TestFlow_Login_Failure(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "backend detail",
			err:      &api.APIError{StatusCode: 401, Detail: "Incorrect email or password"},
			expected: "Incorrect email or password",
		},
		{
			name:     "no detail",
			err:      &api.APIError{StatusCode: 500},
			expected: auth.MsgInvalidCredentials,
		},
		{
			name:     "network error",
			err:      errors.New("dial tcp: connection refused"),
			expected: auth.MsgInvalidCredentials,
		},
		{
			name:     "empty token",
			err:      api.ErrEmptyToken,
			expected: auth.MsgInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFlowFixture(t)
			f.client.EXPECT().Login(gomock.Any(), "a@b.c", "wrong").Return(nil, tc.err)

			err := f.flow.Login(context.Background(), "a@b.c", "wrong")
			require.ErrorIs(t, err, tc.err)

			assert.Equal(t, tc.expected, f.view.Text(auth.LoginErrorID))
			assert.True(t, f.view.Visible(auth.LoginErrorID))
			assert.Empty(t, f.nav.Pages())
			assert.Empty(t, f.token(t))
		})
	}
}

func TestFlow_Register_PasswordMismatch(t *testing.T) {
	f := newFlowFixture(t)
	// no client expectations: a call would fail the test

	err := f.flow.Register(context.Background(), auth.RegisterForm{
		Username:        "joe",
		Email:           "joe@b.c",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	require.ErrorIs(t, err, auth.ErrPasswordMismatch)

	assert.Equal(t, auth.MsgPasswordMismatch, f.view.Text(auth.RegisterErrorID))
	assert.True(t, f.view.Visible(auth.RegisterErrorID))
	assert.Empty(t, f.nav.Pages())
}

func TestFlow_Register_Success(t *testing.T) {
	f := newFlowFixture(t)

	gomock.InOrder(
		f.client.EXPECT().
			Register(gomock.Any(), api.RegisterRequest{Username: "joe", Email: "joe@b.c", Password: "secret"}).
			Return(&api.User{ID: "1", Email: "joe@b.c"}, nil),
		f.client.EXPECT().
			Login(gomock.Any(), "joe@b.c", "secret").
			Return(&api.Token{AccessToken: "T2"}, nil),
	)

	err := f.flow.Register(context.Background(), auth.RegisterForm{
		Username:        "joe",
		Email:           "joe@b.c",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "T2", f.token(t))
	assert.Equal(t, view.PageDashboard, f.nav.Last())
	assert.False(t, f.view.Visible(auth.RegisterErrorID))
}

func TestFlow_Register_Failure(t *testing.T) {
	f := newFlowFixture(t)
	f.client.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, &api.APIError{StatusCode: 400, Detail: "Email already registered"})

	err := f.flow.Register(context.Background(), auth.RegisterForm{
		Email: "joe@b.c", Password: "x", ConfirmPassword: "x",
	})
	require.Error(t, err)

	assert.Equal(t, "Email already registered", f.view.Text(auth.RegisterErrorID))
	assert.True(t, f.view.Visible(auth.RegisterErrorID))
	assert.Empty(t, f.nav.Pages())

	f.client.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))
	require.Error(t, f.flow.Register(context.Background(), auth.RegisterForm{}))
	assert.Equal(t, auth.MsgRegistrationFailed, f.view.Text(auth.RegisterErrorID))
}

func TestFlow_Register_AutoLoginFailure(t *testing.T) {
	f := newFlowFixture(t)
	f.client.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&api.User{}, nil)
	f.client.EXPECT().Login(gomock.Any(), "joe@b.c", "x").Return(nil, &api.APIError{StatusCode: 401})

	err := f.flow.Register(context.Background(), auth.RegisterForm{
		Email: "joe@b.c", Password: "x", ConfirmPassword: "x",
	})
	require.Error(t, err)

	assert.Equal(t, auth.MsgRegistrationFailed, f.view.Text(auth.RegisterErrorID))
	assert.Empty(t, f.token(t))
	assert.Empty(t, f.nav.Pages())
}

func TestFlow_RedirectIfLoggedIn(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	assert.False(t, f.flow.RedirectIfLoggedIn(ctx))
	assert.Empty(t, f.nav.Pages())

	require.NoError(t, f.store.Set(ctx, "T"))
	assert.True(t, f.flow.RedirectIfLoggedIn(ctx))
	assert.Equal(t, []view.Page{view.PageDashboard}, f.nav.Pages())
}
