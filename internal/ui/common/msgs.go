package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

type (
	// RefreshMsg asks the filter component to re-issue the current query.
	RefreshMsg struct{}
	// ContentRefreshedMsg is emitted after the result table has been
	// replaced, so collaborators can re-establish themselves against the
	// fresh content.
	ContentRefreshedMsg struct{}
	// RequestPageMsg asks the filter component to load another page of the
	// current result set.
	RequestPageMsg struct {
		Page  int
		Label string
	}

	// NotifyLoadingMsg shows an indefinite loading notification.
	NotifyLoadingMsg string
	// NotifySuccessMsg shows a success notification that clears itself.
	NotifySuccessMsg string
	// NotifyErrorMsg shows an error notification that stays until replaced.
	NotifyErrorMsg string
)

func Refresh() tea.Msg {
	return RefreshMsg{}
}

func ContentRefreshed() tea.Msg {
	return ContentRefreshedMsg{}
}

func RequestPage(page int, label string) tea.Cmd {
	return func() tea.Msg {
		return RequestPageMsg{Page: page, Label: label}
	}
}

func NotifyLoading(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyLoadingMsg(message)
	}
}

func NotifySuccess(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifySuccessMsg(message)
	}
}

func NotifyError(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyErrorMsg(message)
	}
}
