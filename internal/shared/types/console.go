package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	CreateTable() TableInterface
}

// PrompterInterface define as perguntas interativas feitas ao operador.
type PrompterInterface interface {
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
	// TextInput returns the raw answer; an empty string means no answer.
	TextInput(message string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
