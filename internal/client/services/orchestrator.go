package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/carbonnft/internal/client/client"
	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carbonnft/internal/client/wallet"
	"github.com/dmitrijs2005/carbonnft/internal/common"
	"github.com/dmitrijs2005/carbonnft/internal/dbx"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
	"github.com/google/uuid"
)

// DefaultMintDelay is the simulated chain latency of a mint.
const DefaultMintDelay = 2 * time.Second

const (
	walletNotConnectedMessage = "Please connect your wallet first."
	unexpectedErrorMessage    = "An unexpected error occurred. Please try again."
	mintFailedMessage         = "An error occurred during the simulation. Please try again."
)

// Modal is the overlay currently shown to the user.
type Modal int

const (
	ModalNone Modal = iota
	ModalLogin
	ModalSuccess
	ModalDetail
)

func (m Modal) String() string {
	switch m {
	case ModalLogin:
		return "login"
	case ModalSuccess:
		return "success"
	case ModalDetail:
		return "detail"
	default:
		return "none"
	}
}

// Phase is the pending-record sub-state of a session.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseGenerating   Phase = "generating"
	PhasePreviewReady Phase = "preview_ready"
	PhaseMinting      Phase = "minting"
)

// Session is the UI-visible state of one client. The Orchestrator owns it
// and hands out copies.
type Session struct {
	Identity   string
	Pending    *models.NftData
	Generating bool
	Minting    bool
	Error      string
	Modal      Modal
	Selected   *models.NftData

	// FormGeneration changes after every successful mint; views reset the
	// booking form when it does.
	FormGeneration int
}

// LoggedIn reports whether a wallet is connected.
func (s Session) LoggedIn() bool {
	return s.Identity != ""
}

func (s Session) Phase() Phase {
	switch {
	case s.Generating:
		return PhaseGenerating
	case s.Minting:
		return PhaseMinting
	case s.Pending != nil:
		return PhasePreviewReady
	default:
		return PhaseIdle
	}
}

// Options tune an Orchestrator. Zero values select the defaults.
type Options struct {
	// MintDelay is the artificial mint latency. Negative disables it.
	MintDelay time.Duration
	// GenerationTimeout bounds a generator call. Zero means no bound.
	GenerationTimeout time.Duration
	// OnMinted is called once per successful mint.
	OnMinted func(models.NftData)

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Orchestrator sequences wallet login/logout, preview generation and
// minting, and keeps the wallet slot and the collection in durable storage.
//
// It does not serialize its operations: callers are expected to issue at
// most one generation and one mint at a time (the CLI blocks while either
// runs).
type Orchestrator struct {
	mu sync.Mutex

	db          *sql.DB
	gen         client.ContentGenerator
	wallets     *WalletStore
	collections *CollectionStore
	log         logging.Logger

	mintDelay         time.Duration
	generationTimeout time.Duration
	onMinted          func(models.NftData)
	now               func() time.Time
	sleep             func(ctx context.Context, d time.Duration) error

	session    Session
	collection models.Collection
}

// NewOrchestrator builds an Orchestrator over the local database db. Call
// Restore to pick up the state of a previous run.
func NewOrchestrator(gen client.ContentGenerator, db *sql.DB, log logging.Logger, opts Options) *Orchestrator {
	repo := metadata.NewSQLiteRepository(db)

	o := &Orchestrator{
		db:                db,
		gen:               gen,
		wallets:           NewWalletStore(repo),
		collections:       NewCollectionStore(repo, log),
		log:               log,
		mintDelay:         opts.MintDelay,
		generationTimeout: opts.GenerationTimeout,
		onMinted:          opts.OnMinted,
		now:               opts.now,
		sleep:             opts.sleep,
		collection:        models.Collection{},
	}
	if o.mintDelay == 0 {
		o.mintDelay = DefaultMintDelay
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.sleep == nil {
		o.sleep = sleepContext
	}
	return o
}

// Restore loads the connected wallet and the collection in one transaction.
// Storage failures are logged and leave the orchestrator empty.
func (o *Orchestrator) Restore(ctx context.Context) {
	var (
		addr string
		coll models.Collection
	)

	err := dbx.WithTx(ctx, o.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		var err error
		addr, err = NewWalletStore(repo).Current(ctx)
		if err != nil {
			o.log.Warn(ctx, "failed to read connected wallet", "error", err)
			addr = ""
		}
		coll = NewCollectionStore(repo, o.log).Load(ctx)
		return nil
	})
	if err != nil {
		o.log.Warn(ctx, "failed to restore local state", "error", err)
		addr, coll = "", models.Collection{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Identity = addr
	o.collection = coll

	o.log.Debug(ctx, "local state restored", "wallet", addr, "wallets", len(coll))
}

// Session returns a copy of the current session state.
func (o *Orchestrator) Session() Session {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.session
	if s.Pending != nil {
		p := *s.Pending
		s.Pending = &p
	}
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

// Collection returns the connected wallet's records, newest first.
func (o *Orchestrator) Collection() []models.NftData {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session.Identity == "" {
		return []models.NftData{}
	}
	return o.collection.For(o.session.Identity)
}

// OpenLogin shows the login prompt.
func (o *Orchestrator) OpenLogin() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Modal = ModalLogin
}

// Login connects the simulated wallet derived from name and remembers it
// across restarts. Logging in twice with the same name is a no-op.
func (o *Orchestrator) Login(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", common.NewFieldError("username", "Username cannot be empty.")
	}

	addr := wallet.DeriveAddress(name)

	o.mu.Lock()
	o.session.Identity = addr
	o.session.Error = ""
	if o.session.Modal == ModalLogin {
		o.session.Modal = ModalNone
	}
	o.mu.Unlock()

	if err := o.wallets.SetCurrent(ctx, addr); err != nil {
		o.log.Warn(ctx, "failed to persist connected wallet", "wallet", addr, "error", err)
	}

	o.log.Info(ctx, "wallet connected", "wallet", addr)
	return addr, nil
}

// Logout disconnects the wallet and drops any unminted preview. Minted
// records stay in the collection.
func (o *Orchestrator) Logout(ctx context.Context) {
	o.mu.Lock()
	addr := o.session.Identity
	o.session.Identity = ""
	o.session.Pending = nil
	o.mu.Unlock()

	if err := o.wallets.Clear(ctx); err != nil {
		o.log.Warn(ctx, "failed to clear connected wallet", "error", err)
	}

	o.log.Info(ctx, "wallet disconnected", "wallet", addr)
}

// SubmitBooking generates a preview for req. It fails with
// common.ErrPrecondition when no wallet is connected and with a
// *common.FieldError for invalid input; in both cases nothing changes and
// the generator is not called.
//
// Any previous preview is dropped. On generator failure the session keeps
// the error message and no preview.
func (o *Orchestrator) SubmitBooking(ctx context.Context, req models.BookingRequest) (models.NftData, error) {
	o.mu.Lock()
	addr := o.session.Identity
	if addr == "" {
		o.mu.Unlock()
		return models.NftData{}, common.NewUserError(common.ErrPrecondition, walletNotConnectedMessage, nil)
	}
	if err := req.Validate(); err != nil {
		o.mu.Unlock()
		return models.NftData{}, err
	}
	o.session.Generating = true
	o.session.Error = ""
	o.session.Pending = nil
	o.mu.Unlock()

	log := o.log.With("op", "submit_booking", "request_id", uuid.NewString(), "wallet", addr)
	log.Info(ctx, "generating preview", "project", req.ProjectName, "location", req.Location, "co2_tons", req.CO2Tons)

	gctx := ctx
	if o.generationTimeout > 0 {
		var cancel context.CancelFunc
		gctx, cancel = context.WithTimeout(ctx, o.generationTimeout)
		defer cancel()
	}

	content, err := o.gen.Generate(gctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Generating = false

	if err != nil {
		if !errors.Is(err, common.ErrGeneration) {
			err = common.NewUserError(common.ErrGeneration, unexpectedErrorMessage, err)
		}
		o.session.Error = common.Message(err)
		log.Error(ctx, "preview generation failed", "error", err)
		return models.NftData{}, err
	}

	rec := models.NewNftData(req, content, o.now())
	o.session.Pending = &rec

	log.Info(ctx, "preview ready")
	return rec, nil
}

// Mint commits the pending preview to the connected wallet's collection
// after the simulated delay. Without a preview or a wallet it does nothing
// and returns (nil, nil).
//
// On failure the preview is kept so the mint can be retried without
// generating again.
func (o *Orchestrator) Mint(ctx context.Context) (*models.NftData, error) {
	o.mu.Lock()
	if o.session.Pending == nil || o.session.Identity == "" {
		o.mu.Unlock()
		return nil, nil
	}
	rec := *o.session.Pending
	addr := o.session.Identity
	o.session.Minting = true
	o.session.Error = ""
	o.mu.Unlock()

	log := o.log.With("op", "mint", "request_id", uuid.NewString(), "wallet", addr)
	log.Info(ctx, "minting", "project", rec.ProjectName)

	err := o.sleep(ctx, o.mintDelay)

	o.mu.Lock()
	o.session.Minting = false

	if err != nil {
		o.session.Error = mintFailedMessage
		o.mu.Unlock()
		log.Error(ctx, "minting simulation failed", "error", err)
		return nil, common.NewUserError(common.ErrMint, mintFailedMessage, err)
	}

	o.collection = models.Append(o.collection, addr, rec)
	if err := o.collections.Save(ctx, o.collection); err != nil {
		log.Error(ctx, "failed to save NFTs to local storage", "error", err)
	}
	o.session.Pending = nil
	o.session.FormGeneration++
	o.session.Modal = ModalSuccess
	o.mu.Unlock()

	log.Info(ctx, "nft minted", "timestamp", rec.Timestamp)

	if o.onMinted != nil {
		o.onMinted(rec)
	}
	return &rec, nil
}

// ViewDetails opens the detail view for rec.
func (o *Orchestrator) ViewDetails(rec models.NftData) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Selected = &rec
	o.session.Modal = ModalDetail
}

// CloseModal hides whatever overlay is shown.
func (o *Orchestrator) CloseModal() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Modal = ModalNone
	o.session.Selected = nil
}

// DismissError clears the last error message.
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Error = ""
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
