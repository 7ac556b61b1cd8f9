package test

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

type teaModelLike interface {
	Init() tea.Cmd
	View() string
}

// model is a generic shell that can wrap any teaModelLike
type model[T teaModelLike] struct {
	embeddedModel T
}

func (m model[T]) Init() tea.Cmd {
	return m.embeddedModel.Init()
}

func (m model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := callUpdate(m.embeddedModel, msg)
	if updatedModel != nil {
		m.embeddedModel = updatedModel.(T)
	}
	return m, cmd
}

// callUpdate adapts the component Update signatures, which return the
// concrete model type rather than tea.Model.
func callUpdate(model interface{}, msg tea.Msg) (interface{}, tea.Cmd) {
	modelValue := reflect.ValueOf(model)

	updateMethod := modelValue.MethodByName("Update")
	if !updateMethod.IsValid() {
		return model, nil
	}

	results := updateMethod.Call([]reflect.Value{reflect.ValueOf(msg)})
	if len(results) != 2 {
		return model, nil
	}

	updatedModel := results[0].Interface()

	var cmd tea.Cmd
	if !results[1].IsNil() {
		cmd = results[1].Interface().(tea.Cmd)
	}

	return updatedModel, cmd
}

func (m model[T]) View() string {
	return m.embeddedModel.View()
}

// NewShell creates a new shell wrapping the provided model
func NewShell[T teaModelLike](embeddedModel T) tea.Model {
	return model[T]{
		embeddedModel: embeddedModel,
	}
}
