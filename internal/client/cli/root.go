package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbonnft/internal/client/services"
	"github.com/dmitrijs2005/carbonnft/internal/client/wallet"
)

func (a *App) getStatus() string {
	s := a.orch.Session()

	status := "disconnected"
	if s.LoggedIn() {
		status = wallet.ShortAddress(s.Identity)
	}
	if p := s.Phase(); p != services.PhaseIdle {
		status += " " + string(p)
	}
	return fmt.Sprintf("(%s)", status)
}

// Root prints the banner and runs the REPL over the App's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.prompts, "Carbon Offset NFT Minter (type 'help' for commands)")
	if s := a.orch.Session(); s.LoggedIn() {
		fmt.Fprintln(a.prompts, "Welcome back,", wallet.ShortAddress(s.Identity))
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.prompts, a.out)
}
