package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// MenuAction is an entry of the main menu.
type MenuAction int

const (
	MenuOutboundTraffic MenuAction = iota
	MenuBillSummary
	MenuDNS
	MenuExit
)

var menuActions = []MenuAction{MenuOutboundTraffic, MenuBillSummary, MenuDNS, MenuExit}

func (a MenuAction) String() string {
	switch a {
	case MenuOutboundTraffic:
		return "Query outbound traffic"
	case MenuBillSummary:
		return "Bill summary by product"
	case MenuDNS:
		return "Manage DNS records"
	case MenuExit:
		return "Exit"
	}
	return fmt.Sprintf("MenuAction(%d)", int(a))
}

// runMenu mostra o menu principal até o operador sair ou o contexto ser cancelado.
func (app *CLIApp) runMenu(ctx context.Context, services *Services) error {
	labels := lo.Map(menuActions, func(a MenuAction, _ int) string { return a.String() })

	for {
		if ctx.Err() != nil {
			app.console.LogInfo("Interrupted, bye.")
			return nil
		}

		idx, err := app.prompter.Select("What would you like to do?", labels)
		if err != nil {
			app.console.LogInfo("Bye.")
			return nil
		}

		var runErr error
		switch menuActions[idx] {
		case MenuOutboundTraffic:
			runErr = services.Billing.RunOutboundTraffic(ctx)
		case MenuBillSummary:
			runErr = services.Billing.RunBillSummary(ctx)
		case MenuDNS:
			runErr = services.DNS.Run(ctx)
		case MenuExit:
			app.console.LogInfo("Bye.")
			return nil
		}

		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			app.console.LogError("%s", runErr)
		}
	}
}
