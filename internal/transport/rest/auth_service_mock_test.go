package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/echoplay-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	AuthorizeURLFunc    func(ctx context.Context) (string, error)
	CallbackFunc        func(ctx context.Context, input auth.CallbackInput) (*auth.LoginResult, error)
	SuccessRedirectFunc func(token string) string
	ErrorRedirectFunc   func(err error) string
	LogoutFunc          func(ctx context.Context) string

	calls struct {
		AuthorizeURL []struct {
			Ctx context.Context
		}
		Callback []struct {
			Ctx   context.Context
			Input auth.CallbackInput
		}
		SuccessRedirect []struct {
			Token string
		}
		ErrorRedirect []struct {
			Err error
		}
		Logout []struct {
			Ctx context.Context
		}
	}
	lockAuthorizeURL    sync.RWMutex
	lockCallback        sync.RWMutex
	lockSuccessRedirect sync.RWMutex
	lockErrorRedirect   sync.RWMutex
	lockLogout          sync.RWMutex
}

func (mock *authServiceMock) AuthorizeURL(ctx context.Context) (string, error) {
	if mock.AuthorizeURLFunc == nil {
		panic("authServiceMock.AuthorizeURLFunc: method is nil but authService.AuthorizeURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAuthorizeURL.Lock()
	mock.calls.AuthorizeURL = append(mock.calls.AuthorizeURL, callInfo)
	mock.lockAuthorizeURL.Unlock()
	return mock.AuthorizeURLFunc(ctx)
}

func (mock *authServiceMock) AuthorizeURLCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAuthorizeURL.RLock()
	calls = mock.calls.AuthorizeURL
	mock.lockAuthorizeURL.RUnlock()
	return calls
}

func (mock *authServiceMock) Callback(ctx context.Context, input auth.CallbackInput) (*auth.LoginResult, error) {
	if mock.CallbackFunc == nil {
		panic("authServiceMock.CallbackFunc: method is nil but authService.Callback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.CallbackInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCallback.Lock()
	mock.calls.Callback = append(mock.calls.Callback, callInfo)
	mock.lockCallback.Unlock()
	return mock.CallbackFunc(ctx, input)
}

func (mock *authServiceMock) CallbackCalls() []struct {
	Ctx   context.Context
	Input auth.CallbackInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.CallbackInput
	}
	mock.lockCallback.RLock()
	calls = mock.calls.Callback
	mock.lockCallback.RUnlock()
	return calls
}

func (mock *authServiceMock) SuccessRedirect(token string) string {
	if mock.SuccessRedirectFunc == nil {
		panic("authServiceMock.SuccessRedirectFunc: method is nil but authService.SuccessRedirect was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockSuccessRedirect.Lock()
	mock.calls.SuccessRedirect = append(mock.calls.SuccessRedirect, callInfo)
	mock.lockSuccessRedirect.Unlock()
	return mock.SuccessRedirectFunc(token)
}

func (mock *authServiceMock) SuccessRedirectCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockSuccessRedirect.RLock()
	calls = mock.calls.SuccessRedirect
	mock.lockSuccessRedirect.RUnlock()
	return calls
}

func (mock *authServiceMock) ErrorRedirect(err error) string {
	if mock.ErrorRedirectFunc == nil {
		panic("authServiceMock.ErrorRedirectFunc: method is nil but authService.ErrorRedirect was just called")
	}
	callInfo := struct {
		Err error
	}{
		Err: err,
	}
	mock.lockErrorRedirect.Lock()
	mock.calls.ErrorRedirect = append(mock.calls.ErrorRedirect, callInfo)
	mock.lockErrorRedirect.Unlock()
	return mock.ErrorRedirectFunc(err)
}

func (mock *authServiceMock) ErrorRedirectCalls() []struct {
	Err error
} {
	var calls []struct {
		Err error
	}
	mock.lockErrorRedirect.RLock()
	calls = mock.calls.ErrorRedirect
	mock.lockErrorRedirect.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) string {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockLogout.RLock()
	calls = mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
