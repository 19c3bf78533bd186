// Package controller owns the application state and coordinates generation,
// favorites, the auto-saved draft and notifications.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/generator"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/prompt"
	"github.com/sitesmith/sitesmith-cli/pkg/store"
	"github.com/sitesmith/sitesmith-cli/pkg/toast"
)

var (
	ErrBusy                = errors.New("a generation is already in progress")
	ErrNothingToRegenerate = errors.New("nothing to regenerate yet")
	ErrNoCode              = errors.New("no generated code yet")
	ErrFavoriteNotFound    = errors.New("favorite not found")
)

const RestoreQuestion = "You have unsaved work from a previous session. Would you like to restore it?"

// ConfirmPrompt asks the user a blocking yes/no question
type ConfirmPrompt interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to ConfirmPrompt
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// Job performs the external call of a begun generation. It reads no
// controller state, so it may run off the event loop.
type Job func(ctx context.Context) (string, error)

type Controller struct {
	state State

	gen     generator.Generator
	persist *store.Persistence
	toasts  *toast.Queue
	log     zerolog.Logger

	pushed      []toast.Toast
	subscribers map[int]func(State)
	nextSub     int
	newID       func() string
}

func New(gen generator.Generator, persist *store.Persistence, toasts *toast.Queue, logger zerolog.Logger) *Controller {
	if toasts == nil {
		toasts = toast.NewQueue(toast.DefaultTTL)
	}
	return &Controller{
		state: State{
			Status:    StatusIdle,
			View:      ViewGenerator,
			Config:    models.DefaultConfig(),
			Favorites: []models.Favorite{},
		},
		gen:         gen,
		persist:     persist,
		toasts:      toasts,
		log:         logger.With().Str("component", "controller").Logger(),
		subscribers: make(map[int]func(State)),
		newID:       uuid.NewString,
	}
}

// State returns a snapshot that shares nothing with the controller
func (c *Controller) State() State {
	return c.state.clone()
}

func (c *Controller) Toasts() *toast.Queue { return c.toasts }

// Subscribe registers fn to receive a snapshot after every change
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	return func() { delete(c.subscribers, id) }
}

func (c *Controller) notify() {
	if len(c.subscribers) == 0 {
		return
	}
	snapshot := c.State()
	for _, fn := range c.subscribers {
		fn(snapshot)
	}
}

func (c *Controller) push(text string, severity toast.Severity) {
	t := c.toasts.Push(text, severity)
	c.pushed = append(c.pushed, t)
}

// TakePushed returns the toasts pushed since the last call so the caller
// can schedule their expiry
func (c *Controller) TakePushed() []toast.Toast {
	out := c.pushed
	c.pushed = nil
	return out
}

// Notify pushes a toast for an outcome the controller does not own, such as
// a clipboard copy
func (c *Controller) Notify(text string, severity toast.Severity) {
	c.push(text, severity)
	c.notify()
}

// DismissToast removes a toast early
func (c *Controller) DismissToast(id string) {
	if c.toasts.Dismiss(id) {
		c.notify()
	}
}

// ExpireToast is the toast timer callback. It also drops any other toast
// whose lifetime is over, in case its timer was lost.
func (c *Controller) ExpireToast(id string) {
	before := c.toasts.Len()
	c.toasts.Expire(id)
	c.toasts.Prune()
	if c.toasts.Len() != before {
		c.notify()
	}
}

// --- startup ---

// LoadFavorites reads the persisted list, falling back to empty
func (c *Controller) LoadFavorites() {
	c.state.Favorites = c.persist.LoadFavorites()
	c.notify()
}

// PendingDraft returns auto-saved code from a previous session
func (c *Controller) PendingDraft() (string, bool) {
	return c.persist.LoadDraft()
}

// ResolveDraft applies the user's answer to the restore question
func (c *Controller) ResolveDraft(draft string, restore bool) {
	if !restore {
		if err := c.persist.ClearDraft(); err != nil {
			c.log.Warn().Err(err).Msg("could not discard auto-saved code")
		}
		return
	}
	c.state.Code = draft
	c.state.View = ViewBuilder
	c.push("Your previous session has been restored.", toast.Info)
	c.notify()
}

// Startup restores the draft (after asking) and loads favorites
func (c *Controller) Startup(confirm ConfirmPrompt) {
	if draft, ok := c.PendingDraft(); ok {
		c.ResolveDraft(draft, confirm != nil && confirm.Confirm(RestoreQuestion))
	}
	c.LoadFavorites()
}

// --- generation ---

// Begin moves to generating and returns the job to run. A second Begin
// while generating fails with ErrBusy.
func (c *Controller) Begin(cfg models.WebsiteConfig) (Job, error) {
	if c.state.Status == StatusGenerating {
		return nil, ErrBusy
	}

	cfg = cfg.Clone()
	last := cfg.Clone()
	c.state.Config = cfg
	c.state.LastConfig = &last
	c.state.Err = ""

	if err := prompt.Validate(cfg); err != nil {
		c.fail(err)
		return nil, fmt.Errorf("%w: %v", generator.ErrValidation, err)
	}

	c.state.Status = StatusGenerating
	c.notify()

	gen := c.gen
	return func(ctx context.Context) (string, error) {
		return gen.Generate(ctx, cfg)
	}, nil
}

// Finish applies the job's outcome
func (c *Controller) Finish(code string, err error) {
	if c.state.Status != StatusGenerating {
		c.log.Warn().Msg("generation result arrived with no generation in flight")
		return
	}

	if err != nil {
		c.fail(err)
		return
	}

	c.state.Code = code
	c.state.Status = StatusIdle
	c.state.Err = ""
	c.state.View = ViewBuilder
	if err := c.persist.ClearDraft(); err != nil {
		c.log.Warn().Err(err).Msg("could not clear auto-saved code after generation")
	}
	c.push("Website generated.", toast.Success)
	c.notify()
}

func (c *Controller) fail(err error) {
	msg := userMessage(err)
	c.state.Status = StatusError
	c.state.Err = msg
	c.state.View = ViewGenerator
	c.push(msg, toast.Error)
	c.notify()
}

// Submit runs a whole generation synchronously
func (c *Controller) Submit(ctx context.Context, cfg models.WebsiteConfig) error {
	job, err := c.Begin(cfg)
	if err != nil {
		return err
	}
	code, err := job(ctx)
	c.Finish(code, err)
	return err
}

// BeginRegenerate begins a generation with the most recently submitted config
func (c *Controller) BeginRegenerate() (Job, error) {
	if c.state.LastConfig == nil {
		return nil, ErrNothingToRegenerate
	}
	return c.Begin(*c.state.LastConfig)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, prompt.ErrMissingFields), errors.Is(err, generator.ErrValidation):
		return "Business Name and Description are required."
	case errors.Is(err, generator.ErrGenerationFailed):
		return "Failed to generate website from AI. Please try again."
	case err == nil || err.Error() == "":
		return "An unknown error occurred."
	default:
		return err.Error()
	}
}

// --- editing ---

func (c *Controller) SetConfig(cfg models.WebsiteConfig) {
	c.state.Config = cfg.Clone()
	c.notify()
}

// SetCode replaces the generated code after a manual edit
func (c *Controller) SetCode(code string) {
	c.state.Code = code
	c.notify()
}

// SetView switches tabs; the builder needs code
func (c *Controller) SetView(v View) error {
	if v == ViewBuilder && c.state.Code == "" {
		return ErrNoCode
	}
	c.state.View = v
	c.notify()
	return nil
}

// AutosaveDraft mirrors the current code into the draft slot
func (c *Controller) AutosaveDraft() (bool, error) {
	return c.persist.SaveDraft(c.state.Code)
}

// --- favorites ---

// SaveFavorite stores the current config unless an entry with the same
// business name and description exists
func (c *Controller) SaveFavorite() (models.Favorite, bool) {
	cfg := c.state.Config
	if strings.TrimSpace(cfg.BusinessName) == "" {
		c.push("Add a business name before saving a favorite.", toast.Info)
		c.notify()
		return models.Favorite{}, false
	}

	for _, fav := range c.state.Favorites {
		if fav.SameIdentity(cfg) {
			c.push("This configuration is already in your favorites.", toast.Info)
			c.notify()
			return fav, false
		}
	}

	fav := models.Favorite{ID: c.newID(), WebsiteConfig: cfg.Clone()}
	c.state.Favorites = append([]models.Favorite{fav}, c.state.Favorites...)
	c.persistFavorites()
	c.push("Configuration saved to favorites!", toast.Success)
	c.notify()
	return fav, true
}

// DeleteFavorite removes the favorite with id; unknown ids are a no-op
func (c *Controller) DeleteFavorite(id string) {
	kept := make([]models.Favorite, 0, len(c.state.Favorites))
	for _, fav := range c.state.Favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	c.state.Favorites = kept
	c.persistFavorites()
	c.push("Favorite removed.", toast.Success)
	c.notify()
}

func (c *Controller) ClearFavorites() {
	c.state.Favorites = []models.Favorite{}
	c.persistFavorites()
	c.push("All favorites have been cleared.", toast.Success)
	c.notify()
}

// LoadFavorite copies a favorite into the form. Generated code is untouched.
func (c *Controller) LoadFavorite(id string) error {
	for _, fav := range c.state.Favorites {
		if fav.ID == id {
			c.state.Config = fav.Config()
			c.state.View = ViewGenerator
			c.push(fmt.Sprintf("Loaded favorite: %q", fav.BusinessName), toast.Info)
			c.notify()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFavoriteNotFound, id)
}

func (c *Controller) persistFavorites() {
	if err := c.persist.SaveFavorites(c.state.Favorites); err != nil {
		c.push("Could not save favorites to storage.", toast.Error)
	}
}
