package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 25*time.Minute, config.WorkDuration)
	assert.Equal(t, 5*time.Minute, config.BreakDuration)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        TimerConfig
		wantWork  time.Duration
		wantBreak time.Duration
	}{
		{
			"already normal",
			TimerConfig{WorkDuration: 25 * time.Minute, BreakDuration: 5 * time.Minute},
			25 * time.Minute, 5 * time.Minute,
		},
		{
			"below minimum clamps up",
			TimerConfig{WorkDuration: 10 * time.Second, BreakDuration: -time.Minute},
			time.Minute, time.Minute,
		},
		{
			"zero clamps up",
			TimerConfig{},
			time.Minute, time.Minute,
		},
		{
			"partial minutes truncate",
			TimerConfig{WorkDuration: 90 * time.Second, BreakDuration: 5*time.Minute + time.Second},
			time.Minute, 5 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.in.Normalize()
			assert.Equal(t, tt.wantWork, out.WorkDuration)
			assert.Equal(t, tt.wantBreak, out.BreakDuration)
		})
	}
}
