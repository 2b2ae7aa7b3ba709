package types

import "errors"

var (
	ErrMissingCredentials  = errors.New("no Alibaba Cloud access key found. Set ALIBABA_CLOUD_ACCESS_KEY_ID and ALIBABA_CLOUD_ACCESS_KEY_SECRET or configure a credentials profile")
	ErrProfileNotFound     = errors.New("credentials profile not found")
	ErrInvalidBillingCycle = errors.New("invalid billing cycle")
	ErrRecordNotFound      = errors.New("dns record not found")
	ErrPromptCancelled     = errors.New("prompt cancelled")
)
