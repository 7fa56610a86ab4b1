package main

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type otherSignal struct{}

func (otherSignal) String() string { return "other" }
func (otherSignal) Signal()        {}

func TestSignalStatus(t *testing.T) {
	tests := []struct {
		name string
		sig  os.Signal
		want int
	}{
		{name: "interrupt", sig: os.Interrupt, want: 130},
		{name: "terminate", sig: syscall.SIGTERM, want: 143},
		{name: "non-posix", sig: otherSignal{}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signalStatus(tt.sig))
		})
	}
}
