package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/client/wallet"
)

var errBadIndex = errors.New("bad index")

// List prints the connected wallet's collection, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Connect a wallet to see your collection.")
		return nil
	}

	items := a.orch.Collection()
	if len(items) == 0 {
		a.println("You haven't minted any NFTs yet.")
		return nil
	}

	for i, item := range items {
		a.printf("%d. %s | %s | %s t CO2 | %s\n",
			i+1, item.ProjectName, item.Location, formatTons(item.CO2Tons), item.DisplayTime())
	}
	return nil
}

// Show prints the details of the n-th record of List (1-based).
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: show <n>")
		return errBadIndex
	}

	items := a.orch.Collection()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(items) {
		a.printf("No NFT #%s in your collection.\n", args[0])
		return errBadIndex
	}

	a.orch.ViewDetails(items[n-1])
	defer a.orch.CloseModal()

	if sel := a.orch.Session().Selected; sel != nil {
		a.printRecord(*sel)
	}
	return nil
}

// Status prints the wallet, the flow phase and the last error.
func (a *App) Status(ctx context.Context) error {
	s := a.orch.Session()

	if s.LoggedIn() {
		a.printf("Wallet:  %s (%s)\n", wallet.ShortAddress(s.Identity), s.Identity)
		a.printf("Minted:  %d\n", len(a.orch.Collection()))
	} else {
		a.println("Wallet:  not connected")
	}
	a.printf("Phase:   %s\n", s.Phase())
	if s.Error != "" {
		a.printf("Error:   %s\n", s.Error)
	}
	return nil
}

// Dismiss clears the last error.
func (a *App) Dismiss(ctx context.Context) error {
	a.orch.DismissError()
	return nil
}

func (a *App) printRecord(rec models.NftData) {
	a.printf("Project:     %s\n", rec.ProjectName)
	a.printf("Location:    %s\n", rec.Location)
	a.printf("CO2 offset:  %s tons\n", formatTons(rec.CO2Tons))
	a.printf("Created:     %s\n", rec.DisplayTime())
	a.printf("Image:       %s\n", describeImage(rec.ImageURL))
	a.printf("Description: %s\n", rec.Description)
}

func formatTons(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// describeImage keeps inline images from flooding the terminal.
func describeImage(url string) string {
	if !strings.HasPrefix(url, "data:") {
		return url
	}
	meta, data, ok := strings.Cut(strings.TrimPrefix(url, "data:"), ",")
	if !ok {
		return "inline image"
	}
	mime, _, _ := strings.Cut(meta, ";")
	return fmt.Sprintf("inline %s (%d bytes encoded)", mime, len(data))
}
