package testutil

import (
	"fmt"

	"github.com/diillson/alicloud-ops/internal/shared/types"
)

// SelectCall records the arguments of one Select call.
type SelectCall struct {
	Message string
	Options []string
}

// Prompter answers prompts from pre-scripted queues. When a queue runs dry
// the prompt fails with types.ErrPromptCancelled.
type Prompter struct {
	Selects  []int
	Texts    []string
	Confirms []bool

	SelectCalls  []SelectCall
	TextCalls    []string
	ConfirmCalls []string
}

func (p *Prompter) Select(message string, options []string) (int, error) {
	p.SelectCalls = append(p.SelectCalls, SelectCall{Message: message, Options: options})
	if len(p.Selects) == 0 {
		return -1, types.ErrPromptCancelled
	}
	idx := p.Selects[0]
	p.Selects = p.Selects[1:]
	if idx < 0 || idx >= len(options) {
		return -1, fmt.Errorf("scripted index %d out of range for %q", idx, message)
	}
	return idx, nil
}

func (p *Prompter) TextInput(message string) (string, error) {
	p.TextCalls = append(p.TextCalls, message)
	if len(p.Texts) == 0 {
		return "", types.ErrPromptCancelled
	}
	answer := p.Texts[0]
	p.Texts = p.Texts[1:]
	return answer, nil
}

func (p *Prompter) Confirm(message string, defaultValue bool) (bool, error) {
	p.ConfirmCalls = append(p.ConfirmCalls, message)
	if len(p.Confirms) == 0 {
		return defaultValue, types.ErrPromptCancelled
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}
