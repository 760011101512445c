package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/carbonnft/internal/client/wallet"
	"github.com/dmitrijs2005/carbonnft/internal/common"
)

// Login connects a simulated wallet. The name is taken from args or, when
// none is given, prompted for.
func (a *App) Login(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		a.orch.OpenLogin()

		var err error
		name, err = GetSimpleText(a.reader, "Enter a name to connect a simulated wallet", a.prompts)
		if err != nil {
			a.orch.CloseModal()
			a.log.Error(ctx, "failed to read username", "error", err)
			return err
		}
	}

	addr, err := a.orch.Login(ctx, name)
	if err != nil {
		a.orch.CloseModal()
		a.println(common.Message(err))
		return err
	}

	a.printf("Connected %s\n", wallet.ShortAddress(addr))
	return nil
}

// Logout disconnects the wallet. Minted NFTs stay in local storage.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("No wallet connected.")
		return nil
	}
	a.orch.Logout(ctx)
	a.println("Wallet disconnected.")
	return nil
}
