package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormState_SubmitThenRedirect(t *testing.T) {
	s, err := FormStateIdle.Next(EventSubmit)
	require.NoError(t, err)
	assert.Equal(t, FormStateSubmitting, s)
	assert.True(t, s.InFlight())

	s, err = s.Next(EventRedirect)
	require.NoError(t, err)
	assert.Equal(t, FormStateRedirected, s)
	assert.False(t, s.InFlight())

	s, err = s.Next(EventReset)
	require.NoError(t, err)
	assert.Equal(t, FormStateIdle, s)
}

func TestFormState_FailThenResubmit(t *testing.T) {
	s, err := FormStateIdle.Next(EventSubmit)
	require.NoError(t, err)

	s, err = s.Next(EventFail)
	require.NoError(t, err)
	assert.Equal(t, FormStateErrored, s)
	assert.False(t, s.InFlight())

	s, err = s.Next(EventSubmit)
	require.NoError(t, err)
	assert.True(t, s.InFlight())
}

func TestFormState_InvalidTransitions(t *testing.T) {
	cases := []struct {
		from  FormState
		event FormEvent
	}{
		{FormStateIdle, EventFail},
		{FormStateIdle, EventRedirect},
		{FormStateSubmitting, EventSubmit},
		{FormStateSubmitting, EventReset},
		{FormStateRedirected, EventSubmit},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			s, err := tc.from.Next(tc.event)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tc.from, s)
		})
	}
}

func TestFormState_OnlySubmittingIsInFlight(t *testing.T) {
	for _, s := range []FormState{FormStateIdle, FormStateErrored, FormStateRedirected} {
		assert.False(t, s.InFlight(), s.String())
	}
}
