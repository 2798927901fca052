package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContact = ContactInfo{Email: "info@visacrony.in", Phone: "+91 98765 43210", WhatsApp: "919876543210"}

func newTestSession(opts Options) *Session {
	opts.Contact = testContact
	return NewSession("test", opts)
}

type stubResponder struct {
	reply  string
	err    error
	prompt string
}

func (r *stubResponder) Respond(_ context.Context, prompt string) (string, error) {
	r.prompt = prompt
	return r.reply, r.err
}

func TestClassify_Precedence(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"What's the visa price for Singapore?", IntentPrice},
		{"How much does it COST?", IntentPrice},
		{"I need a tourist visa", IntentVisa},
		{"renew my passport", IntentPassport},
		{"what is the processing duration", IntentTime},
		{"can I call you", IntentContact},
		{"Hello there", IntentGreeting},
		{"xyz", IntentUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, _ := Classify(tc.text)
			assert.Equal(t, tc.want, got)
		})
	}

	_, reply := Classify("qqq")
	assert.Equal(t, FallbackReply, reply)
}

func TestSuggestActions_GroupOrderAndDedup(t *testing.T) {
	buttons := SuggestActions("I want to apply for a visa, please call me")

	var kinds []ActionKind
	for _, b := range buttons {
		kinds = append(kinds, b.Action.Kind)
	}
	// form group (navigate_visa, navigate_passport), visa group adds
	// visa_types but not a second navigate_visa, then contact group.
	assert.Equal(t, []ActionKind{
		NavigateVisa, NavigatePassport,
		ShowVisaTypes,
		ContactEmail, ContactPhone, ContactWhatsApp,
	}, kinds)

	assert.Empty(t, SuggestActions("zzz"))
}

func TestCatalog(t *testing.T) {
	cat := NewCatalog()
	require.Len(t, cat.Types(), 3)

	sg, ok := cat.Country(EVisa, "singapore")
	require.True(t, ok)
	assert.Equal(t, "6 Working Days", sg.ProcessingDays)
	assert.Equal(t, EVisa, sg.Category)

	kr, ok := cat.Country("", "south-korea")
	require.True(t, ok)
	assert.Equal(t, "South Korea", kr.Name)

	us, ok := cat.Country(StickerVisa, "united-states-of-america")
	require.True(t, ok)
	assert.Equal(t, "₹16095", us.VisaFees)

	_, ok = cat.Country(StickerVisa, "singapore")
	assert.False(t, ok)

	_, err := cat.Type("golden")
	assert.ErrorIs(t, err, ErrUnknownVisaType)
}

func TestCatalog_Search(t *testing.T) {
	cat := NewCatalog()

	got, err := cat.Search(EVisa, "24 HRS")
	require.NoError(t, err)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Hong Kong", "Thailand", "Malaysia"}, names)

	all, err := cat.Search(StickerVisa, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 25)

	none, err := cat.Search(EVisa, "atlantis")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = cat.Search("nope", "x")
	assert.ErrorIs(t, err, ErrUnknownVisaType)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "south-korea", Slug("South Korea"))
	assert.Equal(t, "united-states-of-america", Slug("United States of America"))
	assert.Equal(t, "czech-republic", Slug(" Czech  Republic "))
}

func TestSession_InitialState(t *testing.T) {
	s := newTestSession(Options{})
	snap := s.Snapshot()

	assert.Equal(t, StateListening, snap.State)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, InitialGreeting, snap.Messages[0].Text)
	assert.True(t, snap.Messages[0].IsBot)
	assert.Len(t, snap.Messages[0].Actions, 4)
}

func TestSession_SendCanned(t *testing.T) {
	s := newTestSession(Options{})

	reply, err := s.Send(context.Background(), "What's the visa price for Singapore?")
	require.NoError(t, err)
	require.Len(t, reply.Messages, 2)

	user, bot := reply.Messages[0], reply.Messages[1]
	assert.False(t, user.IsBot)
	assert.True(t, bot.IsBot)
	assert.True(t, strings.HasPrefix(bot.Text, "Our pricing varies"))
	assert.NotEmpty(t, bot.Actions)
	assert.Equal(t, KindAction, bot.Kind)

	assert.Len(t, s.Snapshot().Messages, 3)
	assert.Equal(t, StateListening, s.Snapshot().State)
}

func TestSession_SendRejectsEmptyAndClosed(t *testing.T) {
	s := newTestSession(Options{})

	_, err := s.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	s.Close()
	_, err = s.Send(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.Dispatch(context.Background(), Action{Kind: ShowVisaTypes})
	assert.ErrorIs(t, err, ErrSessionClosed)

	s.Open()
	_, err = s.Send(context.Background(), "hi")
	assert.NoError(t, err)
}

func TestSession_ResponderUsedAndActionsFromInput(t *testing.T) {
	r := &stubResponder{reply: "<b>Singapore</b> takes 6 working days."}
	s := newTestSession(Options{Responder: r})

	reply, err := s.Send(context.Background(), "please call me about a visa")
	require.NoError(t, err)
	bot := reply.Messages[1]

	assert.Equal(t, "Singapore takes 6 working days.", bot.Text)
	assert.Contains(t, r.prompt, "User: please call me about a visa")
	assert.Contains(t, r.prompt, "Singapore: 6 Working Days, ₹3000, ₹599")

	var kinds []ActionKind
	for _, b := range bot.Actions {
		kinds = append(kinds, b.Action.Kind)
	}
	assert.Contains(t, kinds, ContactPhone)
	assert.Contains(t, kinds, ShowVisaTypes)
}

func TestSession_ResponderFailureFallsBack(t *testing.T) {
	r := &stubResponder{err: errors.New("status 500")}
	s := newTestSession(Options{Responder: r})

	reply, err := s.Send(context.Background(), "passport renewal")
	require.NoError(t, err)
	bot := reply.Messages[1]
	assert.True(t, strings.HasPrefix(bot.Text, "We provide complete passport services"))
	assert.False(t, bot.IsError)
	assert.False(t, s.Snapshot().HasError)
}

func TestSession_TypingDelayHonoursContext(t *testing.T) {
	s := newTestSession(Options{Typing: func() time.Duration { return time.Hour }})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	reply, err := s.Send(ctx, "hello")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Len(t, reply.Messages, 2)
}

func TestSession_GuidedFlow(t *testing.T) {
	s := newTestSession(Options{})
	ctx := context.Background()

	reply, err := s.Dispatch(ctx, Action{Kind: ShowVisaTypes})
	require.NoError(t, err)
	require.Len(t, reply.Messages[0].Actions, 3)
	assert.Equal(t, FlowBrowsingVisaTypes, s.Snapshot().Flow)

	reply, err = s.Dispatch(ctx, Action{Kind: SelectVisaType, VisaType: EVisa})
	require.NoError(t, err)
	countries := reply.Messages[0].Actions
	require.Len(t, countries, 19)
	assert.Equal(t, Action{Kind: SelectCountry, VisaType: EVisa, CountryID: "australia"}, countries[0].Action)
	assert.Equal(t, FlowBrowsingCountries, s.Snapshot().Flow)

	reply, err = s.Dispatch(ctx, Action{Kind: SelectCountry, VisaType: EVisa, CountryID: "singapore"})
	require.NoError(t, err)
	detail := reply.Messages[0]
	assert.Contains(t, detail.Text, "6 Working Days")
	assert.Contains(t, detail.Text, "₹3000")
	assert.Contains(t, detail.Text, "₹599")
	assert.Contains(t, detail.Text, "Quick online visa for Singapore visits.")

	var kinds []ActionKind
	for _, b := range detail.Actions {
		kinds = append(kinds, b.Action.Kind)
	}
	assert.Equal(t, []ActionKind{ApplyVisa, EnquiryVisa, ContactAboutVisa}, kinds)

	snap := s.Snapshot()
	assert.Equal(t, FlowCountrySelected, snap.Flow)
	require.NotNil(t, snap.SelectedCountry)
	assert.Equal(t, "Singapore", snap.SelectedCountry.Name)

	reply, err = s.Dispatch(ctx, Action{Kind: ApplyVisa})
	require.NoError(t, err)
	require.Len(t, reply.Effects, 1)
	assert.Equal(t, EffectNavigate, reply.Effects[0].Kind)
	assert.Equal(t, "/visa-services", reply.Effects[0].Path)
	assert.Equal(t, "singapore", reply.Effects[0].Params["country"])
	assert.Equal(t, "apply", reply.Effects[0].Params["mode"])
}

func TestSession_SelectCountryWithoutType(t *testing.T) {
	s := newTestSession(Options{})

	reply, err := s.Dispatch(context.Background(), Action{Kind: SelectCountry, CountryID: "japan"})
	require.NoError(t, err)
	assert.False(t, reply.Messages[0].IsError)
	assert.Contains(t, reply.Messages[0].Text, "8 Working Days")
	assert.Equal(t, StickerVisa, s.Snapshot().SelectedVisaType)
}

func TestSession_SelectUnknownCountrySetsError(t *testing.T) {
	s := newTestSession(Options{})

	reply, err := s.Dispatch(context.Background(), Action{Kind: SelectCountry, CountryID: "atlantis"})
	require.NoError(t, err)
	assert.True(t, reply.Messages[0].IsError)
	assert.True(t, s.Snapshot().HasError)

	s.Clear()
	assert.False(t, s.Snapshot().HasError)
}

func TestSession_ContactAndNavigation(t *testing.T) {
	s := newTestSession(Options{})
	ctx := context.Background()

	cases := []struct {
		action Action
		effect Effect
	}{
		{Action{Kind: NavigateAbout}, Effect{Kind: EffectNavigate, Path: "/about"}},
		{Action{Kind: NavigatePassport}, Effect{Kind: EffectNavigate, Path: "/passport-services"}},
		{Action{Kind: ContactEmail}, Effect{Kind: EffectOpen, URL: "mailto:info@visacrony.in?subject=Visa%20and%20Passport%20Enquiry"}},
		{Action{Kind: ContactPhone}, Effect{Kind: EffectOpen, URL: "tel:+919876543210"}},
	}
	for _, tc := range cases {
		reply, err := s.Dispatch(ctx, tc.action)
		require.NoError(t, err)
		require.Len(t, reply.Effects, 1)
		assert.Equal(t, tc.effect, reply.Effects[0])
		assert.NotEmpty(t, reply.Messages[0].Text)
	}

	reply, err := s.Dispatch(ctx, Action{Kind: ContactWhatsApp})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply.Effects[0].URL, "https://wa.me/919876543210?text="))
}

func TestSession_UnknownAction(t *testing.T) {
	s := newTestSession(Options{})
	reply, err := s.Dispatch(context.Background(), Action{Kind: "launch_rocket"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply.Messages[0].Text, "I'm not sure how to help with that"))
	assert.Empty(t, reply.Effects)
}

func TestSession_ClearResetsEverything(t *testing.T) {
	s := newTestSession(Options{})
	ctx := context.Background()

	_, _ = s.Send(ctx, "visa please")
	_, _ = s.Dispatch(ctx, Action{Kind: SelectVisaType, VisaType: StickerVisa})
	_, _ = s.Dispatch(ctx, Action{Kind: SelectCountry, VisaType: StickerVisa, CountryID: "france"})

	s.Clear()
	snap := s.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, InitialGreeting, snap.Messages[0].Text)
	require.Len(t, snap.Messages[0].Actions, 4)
	assert.Equal(t, []ActionKind{ShowVisaTypes, NavigatePassport, NavigateContact, ContactWhatsApp}, []ActionKind{
		snap.Messages[0].Actions[0].Action.Kind,
		snap.Messages[0].Actions[1].Action.Kind,
		snap.Messages[0].Actions[2].Action.Kind,
		snap.Messages[0].Actions[3].Action.Kind,
	})
	assert.Nil(t, snap.SelectedCountry)
	assert.Empty(t, snap.SelectedVisaType)
	assert.Equal(t, FlowNone, snap.Flow)
}

func TestSession_ConcurrentSendsSerialize(t *testing.T) {
	s := newTestSession(Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Send(ctx, "hello")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	msgs := s.Snapshot().Messages
	require.Len(t, msgs, 41)
	for i := 1; i < len(msgs); i += 2 {
		assert.False(t, msgs[i].IsBot, "message %d should be from the visitor", i)
		assert.True(t, msgs[i+1].IsBot, "message %d should be the reply", i+1)
	}
}

func TestSessionStore(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	st := NewSessionStore(Options{Now: clock}, time.Hour)
	a := st.Create()
	b := st.Create()
	assert.NotEqual(t, a.ID, b.ID)

	got, err := st.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = st.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	now = now.Add(30 * time.Minute)
	b.Open()
	now = now.Add(45 * time.Minute)

	assert.Equal(t, 1, st.Evict())
	_, err = st.Get(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(b.ID)
	assert.NoError(t, err)

	st.Delete(b.ID)
	assert.Equal(t, 0, st.Len())
}
