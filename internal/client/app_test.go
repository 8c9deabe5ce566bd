// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-board/internal/logger"
	"github.com/MKhiriev/go-notes-board/internal/mock"
	"github.com/MKhiriev/go-notes-board/internal/service"
	"github.com/MKhiriev/go-notes-board/models"
)

type fakeUI struct {
	err   error
	calls int
}

func (u *fakeUI) Run(context.Context) error {
	u.calls++
	return u.err
}

func newServices(t *testing.T) (*service.ClientServices, *mock.MockClientNoteService) {
	t.Helper()
	notes := mock.NewMockClientNoteService(gomock.NewController(t))
	return &service.ClientServices{NoteService: notes}, notes
}

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, nil, logger.Nop())

	assert.ErrorIs(t, err, errNilUI)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	services, notes := newServices(t)
	notes.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, nil)

	ui := &fakeUI{}
	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_ServerDownStillStartsUI(t *testing.T) {
	services, notes := newServices(t)
	notes.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{}, errors.New("connection refused"))

	ui := &fakeUI{}
	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIError(t *testing.T) {
	services, notes := newServices(t)
	notes.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{}, nil)

	boom := errors.New("tty lost")
	app, err := NewApp(services, &fakeUI{err: boom}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}
