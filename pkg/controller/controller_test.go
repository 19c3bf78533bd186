package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesmith/sitesmith-cli/pkg/generator"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/store"
	"github.com/sitesmith/sitesmith-cli/pkg/toast"
)

type fakeGenerator struct {
	calls int
	code  string
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, cfg models.WebsiteConfig) (string, error) {
	f.calls++
	return f.code, f.err
}

type answer bool

func (a answer) Confirm(string) bool { return bool(a) }

type fixture struct {
	ctrl *Controller
	gen  *fakeGenerator
	kv   *store.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := store.NewMemoryStore()
	gen := &fakeGenerator{code: "<!DOCTYPE html>...</html>"}
	ctrl := New(gen, store.NewPersistence(kv, zerolog.Nop()), toast.NewQueue(toast.DefaultTTL), zerolog.Nop())
	ids := 0
	ctrl.newID = func() string {
		ids++
		return fmt.Sprintf("fav-%d", ids)
	}
	return &fixture{ctrl: ctrl, gen: gen, kv: kv}
}

func acme() models.WebsiteConfig {
	return models.WebsiteConfig{
		WebsiteType:  "Portfolio",
		BusinessName: "Acme",
		Description:  "A shop",
		Tone:         "Professional",
		Features:     []string{"Hero Section"},
		Style:        "Minimalist",
	}
}

func lastToast(t *testing.T, c *Controller) toast.Toast {
	t.Helper()
	latest, ok := c.Toasts().Latest()
	require.True(t, ok, "expected a toast")
	return latest
}

func TestInitialState(t *testing.T) {
	f := newFixture(t)
	s := f.ctrl.State()

	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, ViewGenerator, s.View)
	assert.False(t, s.HasCode())
	assert.Empty(t, s.Favorites)
	assert.True(t, s.Config.Equal(models.DefaultConfig()))
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t)
	f.kv.Set(store.DraftKey, "old work")

	err := f.ctrl.Submit(context.Background(), acme())
	require.NoError(t, err)

	s := f.ctrl.State()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, ViewBuilder, s.View)
	assert.Equal(t, "<!DOCTYPE html>...</html>", s.Code)
	assert.Empty(t, s.Err)

	_, ok, _ := f.kv.Get(store.DraftKey)
	assert.False(t, ok, "draft must be removed after a successful generation")
}

func TestSubmitTransportFailure(t *testing.T) {
	f := newFixture(t)
	f.gen.err = generator.ErrGenerationFailed

	err := f.ctrl.Submit(context.Background(), acme())
	require.Error(t, err)

	s := f.ctrl.State()
	assert.Equal(t, StatusError, s.Status)
	assert.Equal(t, ViewGenerator, s.View)
	assert.Empty(t, s.Code)
	assert.Equal(t, "Failed to generate website from AI. Please try again.", s.Err)
	assert.Equal(t, toast.Error, lastToast(t, f.ctrl).Severity)
}

func TestFailureKeepsPreviousCode(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Submit(context.Background(), acme()))

	f.gen.err = errors.New("boom")
	f.gen.code = ""
	require.Error(t, f.ctrl.Submit(context.Background(), acme()))

	assert.Equal(t, "<!DOCTYPE html>...</html>", f.ctrl.State().Code)
}

func TestSubmitValidationError(t *testing.T) {
	f := newFixture(t)
	cfg := acme()
	cfg.Description = ""

	err := f.ctrl.Submit(context.Background(), cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrValidation))
	assert.Equal(t, 0, f.gen.calls, "no external call for an invalid config")
	s := f.ctrl.State()
	assert.Equal(t, StatusError, s.Status)
	assert.Equal(t, "Business Name and Description are required.", s.Err)
	assert.Equal(t, toast.Error, lastToast(t, f.ctrl).Severity)
}

func TestErrorStateAcceptsNewSubmit(t *testing.T) {
	f := newFixture(t)
	f.gen.err = errors.New("boom")
	require.Error(t, f.ctrl.Submit(context.Background(), acme()))

	f.gen.err = nil
	require.NoError(t, f.ctrl.Submit(context.Background(), acme()))

	s := f.ctrl.State()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Err)
}

func TestDoubleSubmitRejected(t *testing.T) {
	f := newFixture(t)

	job, err := f.ctrl.Begin(acme())
	require.NoError(t, err)
	assert.Equal(t, StatusGenerating, f.ctrl.State().Status)

	_, err = f.ctrl.Begin(acme())
	assert.ErrorIs(t, err, ErrBusy)
	_, err = f.ctrl.BeginRegenerate()
	assert.ErrorIs(t, err, ErrBusy)

	code, err := job(context.Background())
	f.ctrl.Finish(code, err)
	assert.Equal(t, StatusIdle, f.ctrl.State().Status)
	assert.Equal(t, 1, f.gen.calls)
}

func TestFinishWithoutBeginIgnored(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Finish("<html></html>", nil)

	assert.Empty(t, f.ctrl.State().Code)
	assert.Equal(t, StatusIdle, f.ctrl.State().Status)
}

func TestRegenerateUsesLastConfig(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.BeginRegenerate()
	assert.ErrorIs(t, err, ErrNothingToRegenerate)

	require.NoError(t, f.ctrl.Submit(context.Background(), acme()))

	edited := acme()
	edited.BusinessName = "Edited in form"
	f.ctrl.SetConfig(edited)

	job, err := f.ctrl.BeginRegenerate()
	require.NoError(t, err)
	code, err := job(context.Background())
	f.ctrl.Finish(code, err)

	s := f.ctrl.State()
	require.NotNil(t, s.LastConfig)
	assert.Equal(t, "Acme", s.LastConfig.BusinessName)
	assert.Equal(t, 2, f.gen.calls)
}

func TestSetView(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.ctrl.SetView(ViewBuilder), ErrNoCode)
	require.NoError(t, f.ctrl.SetView(ViewFavorites))
	assert.Equal(t, ViewFavorites, f.ctrl.State().View)

	f.ctrl.SetCode("<p>manual</p>")
	require.NoError(t, f.ctrl.SetView(ViewBuilder))
	assert.Equal(t, ViewBuilder, f.ctrl.State().View)
}

func TestSaveFavoriteDedup(t *testing.T) {
	f := newFixture(t)
	f.ctrl.SetConfig(acme())

	_, saved := f.ctrl.SaveFavorite()
	assert.True(t, saved)
	assert.Equal(t, toast.Success, lastToast(t, f.ctrl).Severity)

	dup := acme()
	dup.Tone = "Playful & Fun"
	f.ctrl.SetConfig(dup)
	_, saved = f.ctrl.SaveFavorite()
	assert.False(t, saved)
	assert.Equal(t, toast.Info, lastToast(t, f.ctrl).Severity)
	assert.Len(t, f.ctrl.State().Favorites, 1)

	other := acme()
	other.Description = "A different shop"
	f.ctrl.SetConfig(other)
	_, saved = f.ctrl.SaveFavorite()
	assert.True(t, saved)

	favs := f.ctrl.State().Favorites
	require.Len(t, favs, 2)
	assert.Equal(t, "A different shop", favs[0].Description, "newest first")

	reloaded := store.NewPersistence(f.kv, zerolog.Nop()).LoadFavorites()
	assert.Len(t, reloaded, 2, "every mutation is persisted")
}

func TestSaveFavoriteRequiresBusinessName(t *testing.T) {
	f := newFixture(t)
	cfg := acme()
	cfg.BusinessName = ""
	f.ctrl.SetConfig(cfg)

	_, saved := f.ctrl.SaveFavorite()

	assert.False(t, saved)
	assert.Empty(t, f.ctrl.State().Favorites)
	assert.Equal(t, toast.Info, lastToast(t, f.ctrl).Severity)
}

func TestSaveDoesNotTouchStatus(t *testing.T) {
	f := newFixture(t)
	f.gen.err = errors.New("boom")
	f.ctrl.Submit(context.Background(), acme())

	f.ctrl.SaveFavorite()
	assert.Equal(t, StatusError, f.ctrl.State().Status)
}

func TestFavoriteRoundTrip(t *testing.T) {
	f := newFixture(t)
	cfg := acme()
	cfg.Style = models.StyleCustom
	cfg.CustomCSS = "h1 { color: red }"
	cfg.Features = []string{"Testimonials", "Hero Section", "Contact Form"}
	f.ctrl.SetConfig(cfg)

	fav, saved := f.ctrl.SaveFavorite()
	require.True(t, saved)

	f.ctrl.SetConfig(models.DefaultConfig())
	f.ctrl.SetCode("<p>keep me</p>")
	require.NoError(t, f.ctrl.SetView(ViewFavorites))

	require.NoError(t, f.ctrl.LoadFavorite(fav.ID))

	s := f.ctrl.State()
	assert.True(t, s.Config.Equal(cfg))
	assert.Equal(t, ViewGenerator, s.View)
	assert.Equal(t, "<p>keep me</p>", s.Code, "loading a favorite never touches code")
	assert.Equal(t, `Loaded favorite: "Acme"`, lastToast(t, f.ctrl).Text)
}

func TestLoadUnknownFavorite(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.ctrl.LoadFavorite("nope"), ErrFavoriteNotFound)
}

func TestDeleteAndClearFavorites(t *testing.T) {
	f := newFixture(t)

	f.ctrl.DeleteFavorite("missing")
	assert.Empty(t, f.ctrl.State().Favorites)
	assert.Equal(t, "Favorite removed.", lastToast(t, f.ctrl).Text)

	f.ctrl.ClearFavorites()
	assert.Empty(t, f.ctrl.State().Favorites)
	assert.Equal(t, "All favorites have been cleared.", lastToast(t, f.ctrl).Text)

	f.ctrl.SetConfig(acme())
	fav, _ := f.ctrl.SaveFavorite()
	other := acme()
	other.BusinessName = "Globex"
	f.ctrl.SetConfig(other)
	f.ctrl.SaveFavorite()

	f.ctrl.DeleteFavorite(fav.ID)
	favs := f.ctrl.State().Favorites
	require.Len(t, favs, 1)
	assert.Equal(t, "Globex", favs[0].BusinessName)

	f.ctrl.ClearFavorites()
	assert.Empty(t, store.NewPersistence(f.kv, zerolog.Nop()).LoadFavorites())
}

func TestStartupDeclineRestore(t *testing.T) {
	f := newFixture(t)
	f.kv.Set(store.DraftKey, "X")

	f.ctrl.Startup(answer(false))

	_, ok, _ := f.kv.Get(store.DraftKey)
	assert.False(t, ok, "declined draft is removed")
	assert.Empty(t, f.ctrl.State().Code)
	assert.Equal(t, 0, f.ctrl.Toasts().Len(), "no restoration notification")
}

func TestStartupAcceptRestore(t *testing.T) {
	f := newFixture(t)
	f.kv.Set(store.DraftKey, "X")
	f.kv.Set(store.FavoritesKey, `[{"id":"1","businessName":"Acme","description":"A shop","features":[]}]`)

	f.ctrl.Startup(answer(true))

	s := f.ctrl.State()
	assert.Equal(t, "X", s.Code)
	assert.Equal(t, ViewBuilder, s.View)
	assert.Equal(t, toast.Info, lastToast(t, f.ctrl).Severity)
	require.Len(t, s.Favorites, 1)
	assert.Equal(t, "Acme", s.Favorites[0].BusinessName)
}

func TestStartupWithoutDraftDoesNotAsk(t *testing.T) {
	f := newFixture(t)
	asked := false

	f.ctrl.Startup(ConfirmFunc(func(string) bool {
		asked = true
		return true
	}))

	assert.False(t, asked)
}

func TestStartupMalformedFavorites(t *testing.T) {
	f := newFixture(t)
	f.kv.Set(store.FavoritesKey, "garbage")

	f.ctrl.Startup(nil)

	assert.Empty(t, f.ctrl.State().Favorites)
	assert.Equal(t, 0, f.ctrl.Toasts().Len(), "read errors are never shown")
}

func TestAutosaveDraft(t *testing.T) {
	f := newFixture(t)

	wrote, err := f.ctrl.AutosaveDraft()
	require.NoError(t, err)
	assert.False(t, wrote)

	f.ctrl.SetCode("<p>work</p>")
	wrote, err = f.ctrl.AutosaveDraft()
	require.NoError(t, err)
	assert.True(t, wrote)

	v, _, _ := f.kv.Get(store.DraftKey)
	assert.Equal(t, "<p>work</p>", v)
}

func TestSubscribeAndTakePushed(t *testing.T) {
	f := newFixture(t)
	var seen []Status
	unsubscribe := f.ctrl.Subscribe(func(s State) { seen = append(seen, s.Status) })

	require.NoError(t, f.ctrl.Submit(context.Background(), acme()))
	assert.Equal(t, []Status{StatusGenerating, StatusIdle}, seen)

	pushed := f.ctrl.TakePushed()
	require.Len(t, pushed, 1)
	assert.Empty(t, f.ctrl.TakePushed())

	unsubscribe()
	f.ctrl.SetCode("x")
	assert.Len(t, seen, 2)

	f.ctrl.ExpireToast(pushed[0].ID)
	assert.Equal(t, 0, f.ctrl.Toasts().Len())
}

func TestExpireToastDropsStaleToasts(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f.ctrl.Toasts().SetClock(func() time.Time { return now })

	f.ctrl.Notify("first", toast.Info)
	f.ctrl.Notify("second", toast.Info)
	now = now.Add(2 * time.Second)
	f.ctrl.Notify("third", toast.Info)
	first := f.ctrl.Toasts().Items()[0]

	now = now.Add(toast.DefaultTTL - time.Second)
	f.ctrl.ExpireToast(first.ID)

	items := f.ctrl.Toasts().Items()
	require.Len(t, items, 1, "second expired with first; third is still live")
	assert.Equal(t, "third", items[0].Text)

	f.ctrl.ExpireToast(first.ID)
	assert.Equal(t, 1, f.ctrl.Toasts().Len(), "unknown ids are ignored")
}

func TestStateSnapshotIsIsolated(t *testing.T) {
	f := newFixture(t)
	f.ctrl.SetConfig(acme())
	f.ctrl.SaveFavorite()

	s := f.ctrl.State()
	s.Config.Features[0] = "mutated"
	s.Favorites[0].BusinessName = "mutated"

	fresh := f.ctrl.State()
	assert.Equal(t, "Hero Section", fresh.Config.Features[0])
	assert.Equal(t, "Acme", fresh.Favorites[0].BusinessName)
}
