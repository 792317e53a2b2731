package cli

import "github.com/charmbracelet/bubbles/key"

// editorKeys binds the editor's browse-mode keys.
type editorKeys struct {
	Up, Down         key.Binding
	MoveUp, MoveDown key.Binding
	Longer, Shorter  key.Binding
	Delete           key.Binding
	Add, Edit        key.Binding
	AddDay           key.Binding
	NextDay, PrevDay key.Binding
	EditDay          key.Binding
	Generate, Tip    key.Binding
	Write            key.Binding
	Quit             key.Binding
}

func defaultEditorKeys() editorKeys {
	return editorKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		MoveUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K/J", "move")),
		MoveDown: key.NewBinding(key.WithKeys("J")),
		Longer:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "duration")),
		Shorter:  key.NewBinding(key.WithKeys("-")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		AddDay:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new day")),
		NextDay:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "day")),
		PrevDay:  key.NewBinding(key.WithKeys("shift+tab")),
		EditDay:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename day")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "plan day")),
		Tip:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tip")),
		Write:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.MoveUp, k.Longer, k.Delete, k.Add, k.Edit,
		k.AddDay, k.NextDay, k.EditDay, k.Generate, k.Tip, k.Write, k.Quit,
	}
}
