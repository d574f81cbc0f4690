package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/whkd/internal/application/port"
	portmocks "github.com/bnema/whkd/internal/application/port/mocks"
	"github.com/bnema/whkd/internal/application/usecase"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var altN = entity.HotkeyID{Modifiers: entity.ModAlt, Key: "KeyN"}

func direct(cmd string, action entity.ModeAction) *entity.Descriptor {
	return &entity.Descriptor{HotkeyID: altN, Command: cmd, Action: action}
}

func perProcess(process, cmd string) entity.Descriptor {
	return entity.Descriptor{HotkeyID: altN, Command: cmd, ProcessName: process}
}

func TestDispatchHotkeyUseCase_Execute_UnknownHandle(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	modes.EXPECT().Lookup(port.HotkeyHandle(9)).Return(entity.Hotkey{}, false)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	_, err := uc.Execute(ctx, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUnknownHotkey)
}

func TestDispatchHotkeyUseCase_Execute_CommandOnly(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{ID: altN, Direct: direct("komorebic focus left", entity.NoModeChange())}

	modes.EXPECT().Lookup(port.HotkeyHandle(1)).Return(hotkey, true)
	shell.EXPECT().WriteLine(ctx, "komorebic focus left").Return(nil)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	result, err := uc.Execute(ctx, 1)
	require.NoError(t, err)

	assert.False(t, result.ModeChanged)
	require.Len(t, result.Ran, 1)
	assert.Equal(t, "komorebic focus left", result.Ran[0].Command)
	assert.Empty(t, result.Foreground)
}

func TestDispatchHotkeyUseCase_Execute_CommandRunsBeforeModeChange(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{ID: altN, Direct: direct("echo entering", entity.SwitchMode("resize"))}

	var order []string
	modes.EXPECT().Lookup(port.HotkeyHandle(1)).Return(hotkey, true)
	shell.EXPECT().WriteLine(ctx, "echo entering").
		Run(func(context.Context, string) { order = append(order, "command") }).
		Return(nil)
	modes.EXPECT().Activate(ctx, "resize").
		Run(func(context.Context, string) { order = append(order, "activate") }).
		Return(nil)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	result, err := uc.Execute(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"command", "activate"}, order)
	assert.True(t, result.ModeChanged)
	assert.Equal(t, "resize", result.Mode)
}

func TestDispatchHotkeyUseCase_Execute_ModeOnly(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{ID: altN, Direct: direct("", entity.ReturnToDefault())}

	modes.EXPECT().Lookup(port.HotkeyHandle(3)).Return(hotkey, true)
	modes.EXPECT().Activate(ctx, entity.DefaultMode).Return(nil)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	result, err := uc.Execute(ctx, 3)
	require.NoError(t, err)

	assert.True(t, result.ModeChanged)
	assert.Equal(t, entity.DefaultMode, result.Mode)
	require.Len(t, result.Ran, 1)
	shell.AssertNotCalled(t, "WriteLine", mock.Anything, mock.Anything)
}

func TestDispatchHotkeyUseCase_Execute_ActivateErrorIsNotFatal(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{ID: altN, Direct: direct("", entity.SwitchMode("window"))}

	modes.EXPECT().Lookup(port.HotkeyHandle(1)).Return(hotkey, true)
	modes.EXPECT().Activate(ctx, "window").Return(errors.New("unregister failed"))

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	result, err := uc.Execute(ctx, 1)
	require.NoError(t, err)
	assert.True(t, result.ModeChanged)
	assert.Equal(t, "window", result.Mode)
}

func TestDispatchHotkeyUseCase_Execute_ShellExited(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{ID: altN, Direct: direct("echo hi", entity.SwitchMode("window"))}

	modes.EXPECT().Lookup(port.HotkeyHandle(1)).Return(hotkey, true)
	shell.EXPECT().WriteLine(ctx, "echo hi").Return(port.ErrShellExited)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	result, err := uc.Execute(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrShellExited)
	assert.False(t, result.ModeChanged)
	modes.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestDispatchHotkeyUseCase_Execute_ProcessFilters(t *testing.T) {
	hotkey := entity.Hotkey{
		ID: altN,
		PerProcess: []entity.Descriptor{
			perProcess("Firefox", "echo firefox"),
			perProcess("Google Chrome", "echo chrome"),
			perProcess("code*", "echo editor"),
		},
		Direct: direct("echo fallback", entity.NoModeChange()),
	}

	tests := []struct {
		name       string
		foreground string
		fgErr      error
		want       string
	}{
		{name: "exact match", foreground: "Firefox", want: "echo firefox"},
		{name: "name with space", foreground: "Google Chrome", want: "echo chrome"},
		{name: "glob match", foreground: "code-insiders", want: "echo editor"},
		{name: "no match falls back", foreground: "explorer", want: "echo fallback"},
		{name: "case sensitive", foreground: "firefox", want: "echo fallback"},
		{name: "query failure falls back", fgErr: errors.New("no window"), want: "echo fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()

			modes := portmocks.NewMockModeController(t)
			shell := portmocks.NewMockShellSession(t)
			foreground := portmocks.NewMockForegroundProcess(t)

			modes.EXPECT().Lookup(port.HotkeyHandle(5)).Return(hotkey, true)
			foreground.EXPECT().Name(ctx).Return(tt.foreground, tt.fgErr).Once()
			shell.EXPECT().WriteLine(ctx, tt.want).Return(nil).Once()

			uc := usecase.NewDispatchHotkeyUseCase(modes, shell, foreground)
			result, err := uc.Execute(ctx, 5)
			require.NoError(t, err)

			require.Len(t, result.Ran, 1)
			assert.Equal(t, tt.want, result.Ran[0].Command)
			if tt.fgErr == nil {
				assert.Equal(t, tt.foreground, result.Foreground)
			}
		})
	}
}

func TestDispatchHotkeyUseCase_Execute_ProcessOnlyNoMatch(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	foreground := portmocks.NewMockForegroundProcess(t)
	hotkey := entity.Hotkey{ID: altN, PerProcess: []entity.Descriptor{perProcess("Firefox", "echo firefox")}}

	modes.EXPECT().Lookup(port.HotkeyHandle(5)).Return(hotkey, true)
	foreground.EXPECT().Name(ctx).Return("explorer", nil)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, foreground)
	result, err := uc.Execute(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Ran)
	assert.Equal(t, "explorer", result.Foreground)
}

func TestDispatchHotkeyUseCase_Execute_NilForegroundSkipsFilters(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	hotkey := entity.Hotkey{
		ID:         altN,
		PerProcess: []entity.Descriptor{perProcess("*", "echo any")},
		Direct:     direct("echo fallback", entity.NoModeChange()),
	}

	modes.EXPECT().Lookup(port.HotkeyHandle(2)).Return(hotkey, true)
	shell.EXPECT().WriteLine(ctx, "echo fallback").Return(nil)

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, nil)
	_, err := uc.Execute(ctx, 2)
	require.NoError(t, err)
}

func TestDispatchHotkeyUseCase_Execute_InvalidGlobComparedLiterally(t *testing.T) {
	ctx := testContext()

	modes := portmocks.NewMockModeController(t)
	shell := portmocks.NewMockShellSession(t)
	foreground := portmocks.NewMockForegroundProcess(t)
	hotkey := entity.Hotkey{ID: altN, PerProcess: []entity.Descriptor{perProcess("app[", "echo bracket")}}

	modes.EXPECT().Lookup(port.HotkeyHandle(4)).Return(hotkey, true).Twice()
	foreground.EXPECT().Name(ctx).Return("app[", nil).Once()
	foreground.EXPECT().Name(ctx).Return("app", nil).Once()
	shell.EXPECT().WriteLine(ctx, "echo bracket").Return(nil).Once()

	uc := usecase.NewDispatchHotkeyUseCase(modes, shell, foreground)

	result, err := uc.Execute(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, result.Ran, 1)

	result, err = uc.Execute(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, result.Ran)
}
