package sslcommerz

import "fmt"

type Environment string

const (
	EnvSandbox Environment = "sandbox"
	EnvLive    Environment = "live"

	sandboxAPIBase = "https://sandbox.sslcommerz.com"
	liveAPIBase    = "https://securepay.sslcommerz.com"
)

// APIBase returns the gateway domain for the environment.
func (e Environment) APIBase() string {
	if e == EnvLive {
		return liveAPIBase
	}
	return sandboxAPIBase
}

// SkipTLSVerify reports whether certificate verification is turned off.
// The sandbox serves a certificate that does not validate, so this is policy
// per environment, never a per-call decision.
func (e Environment) SkipTLSVerify() bool {
	return e == EnvSandbox
}

// Credentials is the immutable per-merchant configuration. It must never be
// logged or echoed into redirects.
type Credentials struct {
	StoreID       string
	StorePassword string
	Environment   Environment
}

// NewCredentials builds a validated Credentials value. It fails fast on any
// missing field or unknown environment instead of leaving fields unset.
func NewCredentials(storeID, storePassword, environment string) (Credentials, error) {
	if storeID == "" {
		return Credentials{}, fmt.Errorf("store id is required")
	}
	if storePassword == "" {
		return Credentials{}, fmt.Errorf("store password is required")
	}
	env := Environment(environment)
	if env != EnvSandbox && env != EnvLive {
		return Credentials{}, fmt.Errorf("unknown environment: %s", environment)
	}

	return Credentials{
		StoreID:       storeID,
		StorePassword: storePassword,
		Environment:   env,
	}, nil
}
