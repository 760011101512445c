package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Book(ctx context.Context) error
	Preview(ctx context.Context) error
	Mint(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Status(ctx context.Context) error
	Dismiss(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The first token is the command, the rest are its arguments. The loop exits
// on EOF or when the user types "exit" or "quit".
//
// Commands
//
//	Disconnected:
//	  help, login [name], list, show <n>, status, exit | quit
//
//	Connected:
//	  help
//	  book | generate   prompt for a booking and generate a preview
//	  preview           show the pending preview
//	  mint              mint the pending preview
//	  (l)ist            list minted NFTs, newest first
//	  show <n>          details of the n-th minted NFT
//	  status            wallet, phase and last error
//	  dismiss           clear the last error
//	  logout
//	  exit | quit
//
// The prompt and the farewell go to prompt, which is io.Discard when input
// is piped; replies to help and unknown commands go to out.
//
// Handler errors are ignored here; handlers report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(prompt, "carbonnft %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: book, preview, mint, (l)ist, show <n>, status, dismiss, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login [name], (l)ist, show <n>, status, exit")
			}

		case "login":
			_ = a.Login(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "book", "generate":
			_ = a.Book(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "mint":
			_ = a.Mint(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "exit", "quit":
			fmt.Fprintln(prompt, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
