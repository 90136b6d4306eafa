package service

import (
	"context"
	"log/slog"
	"sync"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// biometricGate implements BiometricGate by adapting the callback-based
// platform prompt to a single blocking, cancellable call.
type biometricGate struct {
	platform BiometricPlatform
	logger   *slog.Logger
}

// NewBiometricGate creates a BiometricGate over the given platform prompt.
func NewBiometricGate(platform BiometricPlatform, logger *slog.Logger) BiometricGate {
	return &biometricGate{platform: platform, logger: logger}
}

// Available reports whether the platform supports biometric authentication.
func (g *biometricGate) Available(ctx context.Context) bool {
	return g.platform.Capability(ctx)
}

// Authenticate shows the platform prompt and waits for its terminal outcome.
//
// Cancelling ctx dismisses the prompt and returns ctx.Err(); a late callback
// fired by the platform after cancellation is absorbed by the buffered
// channel and never delivered. Exactly one outcome is accepted per call.
func (g *biometricGate) Authenticate(
	ctx context.Context,
	cfg securityDomain.PromptConfig,
) (securityDomain.AuthResult, error) {
	if cfg == (securityDomain.PromptConfig{}) {
		cfg = securityDomain.DefaultPromptConfig()
	}

	outcome := make(chan securityDomain.AuthResult, 1)
	var once sync.Once
	deliver := func(result securityDomain.AuthResult) {
		once.Do(func() {
			outcome <- result
		})
	}

	err := g.platform.Begin(cfg, PromptCallbacks{
		OnSucceeded: func() {
			deliver(securityDomain.AuthResult{Status: securityDomain.AuthSuccess})
		},
		OnFailed: func() {
			deliver(securityDomain.AuthResult{Status: securityDomain.AuthFailed})
		},
		OnError: func(message string) {
			deliver(securityDomain.AuthResult{Status: securityDomain.AuthError, Message: message})
		},
	})
	if err != nil {
		g.logger.Warn("biometric prompt could not be shown", slog.String("error", err.Error()))
		return securityDomain.AuthResult{
			Status:  securityDomain.AuthError,
			Message: err.Error(),
		}, nil
	}

	select {
	case result := <-outcome:
		return result, nil
	case <-ctx.Done():
		g.platform.Cancel()
		return securityDomain.AuthResult{}, ctx.Err()
	}
}

// unsupportedPlatform is the BiometricPlatform for deployments without
// biometric hardware. Capability is always false and the prompt reports a
// system error, steering callers to the key-presence fallback path.
type unsupportedPlatform struct{}

// NewUnsupportedPlatform creates a BiometricPlatform for devices without
// biometric hardware.
func NewUnsupportedPlatform() BiometricPlatform {
	return &unsupportedPlatform{}
}

// Capability always reports false.
func (u *unsupportedPlatform) Capability(ctx context.Context) bool {
	return false
}

// Begin reports a system error outcome: there is no hardware to prompt.
func (u *unsupportedPlatform) Begin(cfg securityDomain.PromptConfig, callbacks PromptCallbacks) error {
	if callbacks.OnError != nil {
		callbacks.OnError(securityDomain.ErrBiometricUnavailable.Error())
	}
	return nil
}

// Cancel is a no-op: no prompt is ever shown.
func (u *unsupportedPlatform) Cancel() {}
