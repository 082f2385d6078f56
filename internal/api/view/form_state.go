package view

import (
	"errors"
	"fmt"
)

// FormState 编辑表单的提交状态
type FormState int

const (
	FormStateIdle FormState = iota
	FormStateSubmitting
	FormStateErrored
	FormStateRedirected
)

// FormEvent 请求生命周期事件
type FormEvent int

const (
	EventSubmit FormEvent = iota
	EventFail
	EventRedirect
	EventReset
)

var ErrInvalidTransition = errors.New("invalid form state transition")

var formTransitions = map[FormState]map[FormEvent]FormState{
	FormStateIdle: {
		EventSubmit: FormStateSubmitting,
	},
	FormStateSubmitting: {
		EventFail:     FormStateErrored,
		EventRedirect: FormStateRedirected,
	},
	FormStateErrored: {
		EventSubmit: FormStateSubmitting,
		EventReset:  FormStateIdle,
	},
	FormStateRedirected: {
		EventReset: FormStateIdle,
	},
}

// Next 非法事件返回 ErrInvalidTransition, 状态保持不变
func (s FormState) Next(e FormEvent) (FormState, error) {
	if to, ok := formTransitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}

// InFlight 提交中, 此时提交按钮不可用
func (s FormState) InFlight() bool {
	return s == FormStateSubmitting
}

func (s FormState) String() string {
	switch s {
	case FormStateIdle:
		return "idle"
	case FormStateSubmitting:
		return "submitting"
	case FormStateErrored:
		return "errored"
	case FormStateRedirected:
		return "redirected"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

func (e FormEvent) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventFail:
		return "fail"
	case EventRedirect:
		return "redirect"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("FormEvent(%d)", int(e))
	}
}
