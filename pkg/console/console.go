package console

import (
	"fmt"
	"os"

	"github.com/diillson/alicloud-ops/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface e do PrompterInterface.
type Console struct {
	onInterrupt func()
}

// NewConsole cria um novo Console. Ctrl+C durante uma pergunta encerra o
// processo com uma mensagem de despedida.
func NewConsole() *Console {
	return &Console{onInterrupt: func() {
		fmt.Println()
		pterm.Info.Println("Interrupted, bye.")
		os.Exit(0)
	}}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Select mostra uma lista e devolve o índice escolhido.
// As opções precisam ser distintas.
func (c *Console) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("select %q: no options", message)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(message).
		WithMaxHeight(15).
		WithOnInterruptFunc(c.onInterrupt).
		Show()
	if err != nil {
		return -1, err
	}
	return indexOf(options, choice)
}

// TextInput lê uma linha livre.
func (c *Console) TextInput(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(message).
		WithOnInterruptFunc(c.onInterrupt).
		Show()
}

// Confirm faz uma pergunta sim/não.
func (c *Console) Confirm(message string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(message).
		WithDefaultValue(defaultValue).
		WithOnInterruptFunc(c.onInterrupt).
		Show()
}

func indexOf(options []string, choice string) (int, error) {
	for i, opt := range options {
		if opt == choice {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q is not an option", types.ErrPromptCancelled, choice)
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
