package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/common"
)

var errNotConnected = errors.New("wallet not connected")

// Book prompts for a booking and generates its preview.
func (a *App) Book(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Connect a wallet first: login <name>")
		return errNotConnected
	}

	req, err := a.inputBooking()
	if err != nil {
		a.log.Error(ctx, "failed to read booking", "error", err)
		return err
	}

	a.println("Generating your NFT preview...")
	rec, err := a.orch.SubmitBooking(ctx, req)
	if err != nil {
		a.println(common.Message(err))
		return err
	}

	a.println()
	a.printRecord(rec)
	a.println("Type 'mint' to mint this NFT.")
	return nil
}

func (a *App) inputBooking() (models.BookingRequest, error) {
	var (
		req models.BookingRequest
		err error
	)
	if req.ProjectName, err = GetSimpleText(a.reader, "Project name", a.prompts); err != nil {
		return req, err
	}
	if req.Location, err = GetSimpleText(a.reader, "Location", a.prompts); err != nil {
		return req, err
	}
	if req.CO2Tons, err = GetTons(a.reader, "CO2 offset (tons)", a.prompts); err != nil {
		return req, err
	}
	return req, nil
}

// Preview shows the pending record, if any.
func (a *App) Preview(ctx context.Context) error {
	s := a.orch.Session()
	if s.Pending == nil {
		a.println("No preview. Use 'book' to create one.")
		return nil
	}
	a.printRecord(*s.Pending)
	return nil
}

// Mint commits the pending preview. A failed mint keeps the preview so it
// can be retried.
func (a *App) Mint(ctx context.Context) error {
	s := a.orch.Session()
	if !s.LoggedIn() || s.Pending == nil {
		a.println("Nothing to mint. Use 'book' to create a preview first.")
		return nil
	}

	a.println("Minting...")
	rec, err := a.orch.Mint(ctx)
	if err != nil {
		a.println(common.Message(err))
		a.println("The preview was kept; type 'mint' to retry.")
		return err
	}
	if rec == nil {
		return nil
	}

	a.println("NFT minted successfully!")
	a.printf("%s (%s) is now in your collection.\n", rec.ProjectName, rec.Location)
	a.orch.CloseModal()
	return nil
}
