package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/client/services"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Orchestrator is the part of services.Orchestrator the REPL drives.
type Orchestrator interface {
	Session() services.Session
	Collection() []models.NftData
	OpenLogin()
	Login(ctx context.Context, name string) (string, error)
	Logout(ctx context.Context)
	SubmitBooking(ctx context.Context, req models.BookingRequest) (models.NftData, error)
	Mint(ctx context.Context) (*models.NftData, error)
	ViewDetails(rec models.NftData)
	CloseModal()
	DismissError()
}

type App struct {
	orch   Orchestrator
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// prompts receives field prompts; io.Discard when input is piped.
	prompts io.Writer
}

// NewApp builds an App reading commands from in and writing to out. Field
// prompts are only printed when in is a terminal.
func NewApp(orch Orchestrator, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		orch:    orch,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		prompts: io.Discard,
	}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		a.prompts = out
	}
	return a
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.orch.Session().LoggedIn()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
