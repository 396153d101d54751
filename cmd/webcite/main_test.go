package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/webcite/cmd/webcite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "webcite")
	assert.Contains(t, stdout.String(), "cite")
	assert.Contains(t, stdout.String(), "serve")
	assert.Contains(t, stdout.String(), "history")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_CiteRequiresURL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"cite"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"export"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_HistoryRequiresDB(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"history"}, &stdout, &stderr)

	assert.Error(t, err)
}
